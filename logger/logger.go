package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/uslanozan/agent-import/config"
)

// New builds the run logger. Logs go to stderr and, when configured, to a
// rotated file; stdout is left for the import summary. The returned closer
// releases the file writer.
func New(cfg config.LogConfig, stderr io.Writer) (zerolog.Logger, io.Closer, error) {
	level := ParseLevel(cfg.Level)
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var console io.Writer = stderr
	if cfg.Format != "json" {
		console = zerolog.ConsoleWriter{
			Out:        stderr,
			TimeFormat: "15:04:05.000",
			FormatLevel: func(i any) string {
				return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
			},
		}
	}

	writers := []io.Writer{console}
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		writers = append(writers, file)
		closer = file
	}

	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return log, closer, nil
}

// ParseLevel maps a level name to zerolog, defaulting to warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
