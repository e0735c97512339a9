package static

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/response"
)

// DefaultParam is the catch-all route parameter the handlers read the
// file path from, matching the conventional registration
// Get("/static/*filepath", ...).
const DefaultParam = "filepath"

type config struct {
	param    string
	notFound handler.Response
}

// Option configures the static file handlers.
type Option func(*config)

// WithParam overrides the route parameter holding the requested file
// path.
func WithParam(name string) Option {
	return func(c *config) {
		c.param = name
	}
}

// WithNotFound sets the response served when a file does not exist.
func WithNotFound(resp handler.Response) Option {
	return func(c *config) {
		c.notFound = resp
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		param:    DefaultParam,
		notFound: response.Error(response.ErrNotFound),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dir serves files from a directory tree. Register it on a catch-all
// route so the tail of the path selects the file:
//
//	app.Get("/assets/*filepath", static.Dir[*router.Context]("./public"))
//
// Directory listing is disabled; a directory resolves only through its
// index.html. Panics at startup if root is not an existing directory.
func Dir[C handler.Context](root string, opts ...Option) handler.HandlerFunc[C] {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		panic("static.Dir: " + err.Error())
	}
	if !info.IsDir() {
		panic("static.Dir: not a directory: " + root)
	}

	return serveFS[C](os.DirFS(root), opts)
}

// FS serves files from an fs.FS, typically an embed.FS subtree:
//
//	//go:embed public
//	var assets embed.FS
//
//	sub, _ := fs.Sub(assets, "public")
//	app.Get("/assets/*filepath", static.FS[*router.Context](sub))
func FS[C handler.Context](fsys fs.FS, opts ...Option) handler.HandlerFunc[C] {
	return serveFS[C](fsys, opts)
}

func serveFS[C handler.Context](fsys fs.FS, opts []Option) handler.HandlerFunc[C] {
	cfg := newConfig(opts)
	server := http.FileServerFS(noListingFS{fsys})

	return func(ctx C) handler.Response {
		// An empty catch-all tail means the mount root itself.
		name := cleanRequestPath(ctx.Param(cfg.param))
		if name == "" {
			name = "/"
		}

		info, err := fs.Stat(fsys, toFSName(name))
		if err != nil {
			return cfg.notFound
		}
		if info.IsDir() {
			if _, err := fs.Stat(fsys, path.Join(toFSName(name), "index.html")); err != nil {
				return cfg.notFound
			}
			// The file server redirects slash-less directory paths;
			// serve the index directly instead.
			if !strings.HasSuffix(name, "/") {
				name += "/"
			}
		}

		return func(w http.ResponseWriter, r *http.Request) error {
			// FileServerFS resolves against r.URL.Path; rewrite it to
			// the param-derived name so mount prefixes never leak into
			// the lookup.
			r2 := r.Clone(r.Context())
			r2.URL.Path = name
			server.ServeHTTP(w, r2)
			return nil
		}
	}
}

// File serves a single file with content-type detection and range
// request support. Panics at startup if the path is missing or a
// directory.
func File[C handler.Context](filePath string) handler.HandlerFunc[C] {
	filePath = filepath.Clean(filePath)
	info, err := os.Stat(filePath)
	if err != nil {
		panic("static.File: " + err.Error())
	}
	if info.IsDir() {
		panic("static.File: is a directory: " + filePath)
	}

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			http.ServeFile(w, r, filePath)
			return nil
		}
	}
}

// cleanRequestPath normalizes a request-supplied path to a rooted,
// traversal-free form.
func cleanRequestPath(p string) string {
	if p == "" {
		return ""
	}
	cleaned := path.Clean("/" + p)
	if cleaned == "/" {
		return "/"
	}
	return cleaned
}

// toFSName maps a rooted URL path to an fs.FS name.
func toFSName(p string) string {
	name := strings.TrimPrefix(p, "/")
	if name == "" {
		return "."
	}
	return name
}

// noListingFS hides directories without an index.html so the file
// server never renders listings.
type noListingFS struct {
	fs.FS
}

func (n noListingFS) Open(name string) (fs.File, error) {
	f, err := n.FS.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if info.IsDir() {
		index := path.Join(name, "index.html")
		if _, err := fs.Stat(n.FS, index); err != nil {
			_ = f.Close()
			return nil, fs.ErrNotExist
		}
	}

	return f, nil
}
