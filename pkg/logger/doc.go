// Package logger provides structured logging setup with configurable log
// levels. It wraps the standard log/slog package; the resulting logger can be
// handed to props.SetLogger to route accessor diagnostics.
package logger
