// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Only two kinds exist. MISSING_ENV carries the logical concept that could
// not be resolved from the environment, and IO_FAILURE wraps a filesystem
// or process level failure:
//
//	if _, err := os.Getwd(); err != nil {
//	    return errors.WrapIO("failed to read working directory", err)
//	}
//
//	if label, ok := errors.MissingEnvLabel(err); ok {
//	    slog.Warn("environment incomplete", "label", label)
//	}
package errors
