// Package logging builds the structured loggers used by keyconv. Logs go to
// the diagnostic stream so stdout carries only command output.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w at level and above.
func New(w io.Writer, level zapcore.Level) *zap.SugaredLogger {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}

// Stderr is New(os.Stderr, zapcore.InfoLevel).
func Stderr() *zap.SugaredLogger {
	return New(os.Stderr, zapcore.InfoLevel)
}
