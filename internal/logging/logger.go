package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philologus/philologus-desktop/internal/platform"
)

// Rotation settings
const (
	MaxSizeMB  = 10
	MaxBackups = 7
	MaxAgeDays = 28
	FilePrefix = "philologus"
)

// Options configures the application logger
type Options struct {
	// Dir is the log directory. Empty disables file output.
	Dir string
	// Debug lowers the level to Debug and tees output to stderr.
	Debug bool
}

// New builds the application logger. If the log directory cannot be
// created, it falls back to stderr and returns the error alongside the logger.
func New(opts Options) (*zap.Logger, error) {
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	var cores []zapcore.Core
	var setupErr error

	if opts.Dir != "" {
		if err := platform.CreateDirectoryIfNotExists(opts.Dir); err != nil {
			setupErr = fmt.Errorf("failed to create log directory: %w", err)
		} else {
			cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(newRotator(opts.Dir)), level))
		}
	}

	if opts.Debug || len(cores) == 0 {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level))
	}

	return zap.New(zapcore.NewTee(cores...)), setupErr
}

// FileName returns the log file name for the given day
func FileName(day time.Time) string {
	return fmt.Sprintf("%s-%s.log", FilePrefix, day.Format("2006-01-02"))
}

func newRotator(dir string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, FileName(time.Now())),
		MaxSize:    MaxSizeMB,
		MaxBackups: MaxBackups,
		MaxAge:     MaxAgeDays,
		Compress:   true,
	}
}
