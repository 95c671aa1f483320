package infrastructure

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"catalogapi.app/internal/ports"
)

// FileLoggerAdapter implements structured JSON logging to files
type FileLoggerAdapter struct {
	*SlogLoggerAdapter
	file *os.File
}

// NewFileLoggerAdapter opens logPath for appending and logs JSON lines at level
func NewFileLoggerAdapter(logPath string, level slog.Level) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})

	return &FileLoggerAdapter{
		SlogLoggerAdapter: NewSlogLoggerAdapter(slog.New(handler)),
		file:              file,
	}, nil
}

// Close flushes and closes the underlying file
func (f *FileLoggerAdapter) Close() error {
	if err := f.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	return f.file.Close()
}

var _ ports.Logger = (*FileLoggerAdapter)(nil)
