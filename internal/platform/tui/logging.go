package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DefaultLogPath is where the terminal host writes its log while the
// alternate screen owns stdout.
const DefaultLogPath = "~/.mazeshift/mazeshift.log"

// NewLogger creates a logger with the host's standard options.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazeshift",
		Level:           level,
	})
}

// OpenLogFile creates a logger appending to path. The returned closer
// releases the file.
func OpenLogFile(path string, level log.Level) (*log.Logger, io.Closer, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("tui: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("tui: cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("tui: cannot open log file: %w", err)
	}

	return NewLogger(f, level), f, nil
}

// discardLogger is used when the caller supplies no logger.
func discardLogger() *log.Logger {
	return NewLogger(io.Discard, log.FatalLevel)
}
