// Package logging opens the session log. The TUI owns the terminal, so
// records go to a JSON file that the activity view tails.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Session is an open log plus the id stamped on every record it writes.
type Session struct {
	Logger zerolog.Logger
	ID     string
	Path   string

	file io.Closer
}

// Open appends to the log at path, creating parent directories as needed.
func Open(path string, level zerolog.Level) (*Session, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	s := newSession(file, level)
	s.Path = path
	s.file = file
	return s, nil
}

// Discard returns a session that drops every record. It is used when the log
// file cannot be opened.
func Discard() *Session {
	return &Session{Logger: zerolog.Nop(), ID: uuid.NewString()}
}

func newSession(w io.Writer, level zerolog.Level) *Session {
	id := uuid.NewString()
	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("session", id).
		Logger()
	return &Session{Logger: logger, ID: id}
}

// Close flushes and closes the underlying file, if any.
func (s *Session) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	return s.file.Close()
}
