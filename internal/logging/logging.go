// Package logging configures the shared application logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// Options controls logger construction.
type Options struct {
	// Level is a logrus level name ("debug", "info", ...). Defaults to info.
	Level string

	// LogDir, when set, adds a rotated file writer alongside stderr.
	LogDir string
}

// New builds the process-wide logger. Subsequent calls return the same
// instance regardless of options.
func New(opts Options) *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()

		level, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			level = logrus.InfoLevel
		}
		logger.SetLevel(level)

		logger.SetFormatter(&formatter.Formatter{
			TimestampFormat: "2006-01-02 15:04:05",
			HideKeys:        false,
			NoColors:        false,
		})

		writers := []io.Writer{os.Stderr}
		if opts.LogDir != "" {
			writers = append(writers, &lumberjack.Logger{
				Filename:   filepath.Join(opts.LogDir, "mudra.log"),
				LocalTime:  true,
				Compress:   true,
				MaxSize:    50,
				MaxAge:     7,
				MaxBackups: 3,
			})
		}

		logger.SetOutput(io.MultiWriter(writers...))
	})

	return logger
}
