package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

type LoggerConfig struct {
	Name          string      `json:"name"`
	LogLevel      hclog.Level `json:"logLevel"`
	JSONLogFormat bool        `json:"jsonLogFormat"`
	AppendFile    bool        `json:"appendFile"`
	LogFilePath   string      `json:"logFilePath"` // empty means stderr
	Output        io.Writer   `json:"-"`
}

// NewLogger creates hclog logger. Logs never go to stdout because stdout carries command results
func NewLogger(config LoggerConfig) (hclog.Logger, error) {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	if config.LogFilePath != "" {
		if err := CreateDirectoryIfNotExists(filepath.Dir(config.LogFilePath), 0770); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		flags := os.O_CREATE | os.O_WRONLY
		if config.AppendFile {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}

		file, err := os.OpenFile(config.LogFilePath, flags, 0660)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", config.LogFilePath, err)
		}

		output = file
	}

	level := config.LogLevel
	if level == hclog.NoLevel {
		level = hclog.Warn
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       config.Name,
		Level:      level,
		JSONFormat: config.JSONLogFormat,
		Output:     output,
	}), nil
}
