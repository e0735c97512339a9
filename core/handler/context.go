package handler

import (
	"context"
	"net/http"
)

// Context defines the contract for request contexts in the framework.
// Use the router package's Context for the default implementation.
//
// Path parameters are a mutable per-request map: middleware may seed
// values with SetParam before routing runs, and route-derived bindings
// overwrite same-name keys when the router matches.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetParam(key, val string)
	SetValue(key, val any)
}
