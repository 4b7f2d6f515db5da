package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the diagnostic logger writing to w. Without verbose it discards
// everything, so stdout carries only results and stderr only fatal errors.
func New(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	config := zap.NewDevelopmentEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	config.TimeKey = "timestamp"
	config.MessageKey = "message"
	config.LevelKey = "level"
	config.CallerKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(config),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.DebugLevel,
	)
	return zap.New(core)
}

// NewSugared is New with the printf-style sugared API.
func NewSugared(verbose bool, w io.Writer) *zap.SugaredLogger {
	return New(verbose, w).Sugar()
}
