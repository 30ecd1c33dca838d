package covenant

// Logger is the field-aware logger used by the Registry. Registry bookkeeping is logged at
// debug level, rejected calls at warn level.
type Logger interface {
	WithField(key string, value any) Logger
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type noopLogger struct{}

// NewNoopLogger returns a Logger that discards everything.
func NewNoopLogger() Logger { return noopLogger{} }

func (l noopLogger) WithField(string, any) Logger { return l }
func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Warnf(string, ...any) {}
