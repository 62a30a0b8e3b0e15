package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// NewLogger creates a new hclog logger with standard settings.
// JSON output is selected by IMAGEPACK_JSON_LOG=1; a nil output means stderr.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	jsonFormat := os.Getenv("IMAGEPACK_JSON_LOG") == "1"
	return newLogger(name, level, jsonFormat, output)
}

// NewRunLogger builds the logger for a compression run.
//
// Level resolution priority: CLI flag, IMAGEPACK_LOG_LEVEL, then "info".
// A "json" or "json:<level>" value switches the logger to JSON output.
// IMAGEPACK_LOG_PATH redirects output to a file when set.
func NewRunLogger(name, cliLevel string) hclog.Logger {
	level := cliLevel
	if level == "" {
		level = os.Getenv("IMAGEPACK_LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}

	jsonFormat := false
	if strings.HasPrefix(level, "json") {
		jsonFormat = true
		if parts := strings.SplitN(level, ":", 2); len(parts) == 2 && parts[1] != "" {
			level = parts[1]
		} else {
			level = "info"
		}
	}

	var output io.Writer
	if logPath := os.Getenv("IMAGEPACK_LOG_PATH"); logPath != "" {
		if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			output = file
		}
	}

	return newLogger(name, level, jsonFormat, output)
}

// newLogger assembles the hclog options shared by every constructor
func newLogger(name, level string, jsonFormat bool, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	// Add prefix for non-JSON output
	if !jsonFormat {
		output = NewPrefixWriter("📸 ", output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}
