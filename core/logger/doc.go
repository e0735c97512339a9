// Package logger provides typed slog attribute constructors with
// consistent keys for the fields this toolkit logs: requests, timings,
// errors, and client metadata.
//
//	log.Info("request completed",
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.StatusCode(status),
//		logger.Elapsed(start),
//		logger.Error(err), // no-op when err is nil
//	)
package logger
