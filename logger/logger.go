package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

type LoggerConfig struct {
	LogLevel      hclog.Level `json:"logLevel"`
	JSONLogFormat bool        `json:"jsonLogFormat"`
	AppendFile    bool        `json:"appendFile"`
	LogFilePath   string      `json:"logFilePath"`
}

// NewLogger creates a hclog logger from the config. If LogFilePath is set,
// output goes both to the file and to stderr.
func NewLogger(config LoggerConfig) (hclog.Logger, error) {
	output := io.Writer(os.Stderr)

	if config.LogFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(config.LogFilePath), 0770); err != nil {
			return nil, fmt.Errorf("could not create log directory: %w", err)
		}

		flags := os.O_CREATE | os.O_WRONLY
		if config.AppendFile {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}

		file, err := os.OpenFile(config.LogFilePath, flags, 0660)
		if err != nil {
			return nil, fmt.Errorf("could not open log file: %w", err)
		}

		output = io.MultiWriter(file, os.Stderr)
	}

	return hclog.New(&hclog.LoggerOptions{
		Level:      config.LogLevel,
		JSONFormat: config.JSONLogFormat,
		Output:     output,
	}), nil
}
