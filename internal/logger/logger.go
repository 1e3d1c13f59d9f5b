// Package logger wraps charm/log with the handful of events mdblog reports.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *Logger) *Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// PostSkipped logs a candidate file that did not become a post.
func (l *Logger) PostSkipped(file, reason string) {
	l.Debug("post skipped",
		"file", file,
		"reason", reason)
}

// PostsLoaded logs the result of a repository load.
func (l *Logger) PostsLoaded(candidates, loaded int, duration time.Duration) {
	l.Debug("posts loaded",
		"candidates", candidates,
		"posts", loaded,
		"duration", duration.Round(time.Millisecond))
}

// ManifestUnavailable logs a fallback from the manifest to fixed candidates.
func (l *Logger) ManifestUnavailable(path string, err error) {
	l.Warn("manifest unavailable, using fallback posts",
		"manifest", path,
		"error", err)
}

// Generated logs a written output document.
func (l *Logger) Generated(kind, path string, entries int) {
	l.Info("generated",
		"kind", kind,
		"path", path,
		"entries", entries)
}

// PostCreated logs a scaffolded post.
func (l *Logger) PostCreated(file, slug string) {
	l.Info("post created",
		"file", file,
		"slug", slug)
}

// Request logs a served HTTP request.
func (l *Logger) Request(method, uri string, status int, latency time.Duration) {
	l.Info("request",
		"method", method,
		"uri", uri,
		"status", status,
		"latency", latency)
}
