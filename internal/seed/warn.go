package seed

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/quantumauth-io/quantum-auth-keys/internal/logging"
)

// Warner receives deprecation warnings.
type Warner interface {
	Warn(msg string, keyvals ...interface{})
}

// LogWarner writes warnings through a zap logger.
type LogWarner struct {
	log *zap.SugaredLogger
}

// NewLogWarner writes to w. A nil w means stderr.
func NewLogWarner(w io.Writer) LogWarner {
	if w == nil {
		return LogWarner{log: logging.Stderr()}
	}
	return LogWarner{log: logging.New(w, zapcore.InfoLevel)}
}

func (l LogWarner) Warn(msg string, keyvals ...interface{}) {
	l.log.Warnw(msg, keyvals...)
}
