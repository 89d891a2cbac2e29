// Package logging configures the global zerolog logger and provides the
// HTTP request logging middleware.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var levelMapping = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warning": zerolog.WarnLevel,
	"warn":    zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
}

// ParseLevel maps a configured level name to a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	lev, ok := levelMapping[strings.ToLower(level)]
	if !ok {
		return zerolog.NoLevel, fmt.Errorf("invalid logging level: %s", level)
	}
	return lev, nil
}

// Setup sets the global level and routes the global logger to the file
// at path (appending), or to a human-readable console writer on stderr
// when path is empty. The returned closer releases the log file.
func Setup(path, level string) (io.Closer, error) {
	lev, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(lev)
	if path != "" {
		logf, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize log file %s: %w", path, err)
		}
		log.Logger = log.Output(logf)
		return logf, nil
	}
	log.Logger = log.Output(
		zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		},
	)
	return io.NopCloser(nil), nil
}
