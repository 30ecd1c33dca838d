package covenant

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// writerLogger writes one line per entry to an io.Writer: "LEVEL msg [k=v ...]".
// Fields are sorted so that output is stable in tests.
type writerLogger struct {
	w      io.Writer
	fields map[string]any
}

func newWriterLogger(w io.Writer) *writerLogger {
	return &writerLogger{w: w, fields: map[string]any{}}
}

func (l *writerLogger) WithField(key string, value any) Logger {
	fields := make(map[string]any, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value
	return &writerLogger{w: l.w, fields: fields}
}

func (l *writerLogger) write(level, msg string) {
	line := level + " " + strings.TrimSuffix(msg, "\n")
	if len(l.fields) > 0 {
		keys := make([]string, 0, len(l.fields))
		for k := range l.fields {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = fmt.Sprintf("%s=%v", k, l.fields[k])
		}
		line += " [" + strings.Join(pairs, " ") + "]"
	}
	fmt.Fprintln(l.w, line)
}

func (l *writerLogger) Debugf(format string, args ...any) { l.write("DEBUG", fmt.Sprintf(format, args...)) }
func (l *writerLogger) Warnf(format string, args ...any) { l.write("WARN", fmt.Sprintf(format, args...)) }
