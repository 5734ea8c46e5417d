// Package logging provides structured logging utilities for sysprobe.
//
// # Overview
//
// This package wraps the standard library slog package with sysprobe-specific defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("sysprobe", "v1.0.0")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("capturing snapshot")
//	    slog.Debug("resolved hostname", "hostname", host)
//	    slog.Warn("snapshot degraded", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("sysprobe", "v2.0.0", "debug")
//	logger.Info("capture starting", "os", runtime.GOOS)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cli", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug sysprobe
//	LOG_LEVEL=error sysprobe --format table
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "snapshot captured",
//	    "module": "sysprobe",
//	    "version": "v1.0.0",
//	    "gpus": 1
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "gpu.(*LinuxEnumerator).Enumerate",
//	        "file": "linux.go",
//	        "line": 45
//	    },
//	    "msg": "running gpu enumeration command",
//	    "module": "sysprobe",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("myapp", version)
//	    defer slog.Info("application started")
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Debug("gpu enumeration finished",
//	    "strategy", "linux",
//	    "count", len(names),
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("lspci output", "lines", n)  // Development/troubleshooting
//	slog.Info("snapshot captured")         // Normal operations
//	slog.Warn("snapshot degraded")         // Potential issues
//	slog.Error("failed to write report")   // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("failed to write report",
//	    "error", err,
//	    "output", path,
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/collector - Data collection logging
//   - pkg/snapshot - Snapshot construction logging
//
// All components share consistent logging format and configuration.
package logging
