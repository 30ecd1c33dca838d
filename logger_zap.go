package covenant

import (
	"go.uber.org/zap"
)

// zapLogger adapts a zap.SugaredLogger to the Logger interface.
type zapLogger struct {
	*zap.SugaredLogger
}

// NewZapLogger wraps l. A nil logger yields zap's no-op logger.
func NewZapLogger(l *zap.SugaredLogger) Logger {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	return zapLogger{SugaredLogger: l}
}

func (l zapLogger) WithField(key string, value any) Logger {
	return zapLogger{SugaredLogger: l.SugaredLogger.With(key, value)}
}
