// Package log provides structured logging backed by logrus with filesystem-based persistence.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gotw-cli/gotw/filesystem"
	"github.com/gotw-cli/gotw/key"
	"github.com/gotw-cli/gotw/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// logger discards everything until Setup enables it.
var logger = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Setup opens the daily log file and applies the configured format and level.
// When logs.write is off the logger keeps discarding.
func Setup() error {
	if !viper.GetBool(key.LogsWrite) {
		logger = newDiscard()
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	l := logrus.New()
	l.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	logger = l
	return nil
}

// WithFields starts an entry carrying structured fields, e.g. the stack size after an operation.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func Error(args ...any)                { logger.Error(args...) }
func Warn(args ...any)                 { logger.Warn(args...) }
func Info(args ...any)                 { logger.Info(args...) }
func Infof(format string, args ...any) { logger.Infof(format, args...) }
