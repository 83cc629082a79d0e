package logging

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const logFilePermission = 0o664

// ZerologLogger adapts zerolog to Logger. Key-value args are attached as
// fields; a dangling key without a value is logged under "!BADKEY".
type ZerologLogger struct {
	l zerolog.Logger
}

func NewZerologLogger(w io.Writer, level zerolog.Level) *ZerologLogger {
	return &ZerologLogger{l: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// NewFileLogger opens path for appending and logs there. An empty path
// logs to stderr. The returned closer releases the file.
func NewFileLogger(path string, level zerolog.Level) (*ZerologLogger, io.Closer, error) {
	if path == "" {
		return NewZerologLogger(os.Stderr, level), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePermission)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewZerologLogger(zerolog.SyncWriter(f), level), f, nil
}

func (z *ZerologLogger) Debug(_ context.Context, msg string, args ...any) {
	withFields(z.l.Debug(), args).Msg(msg)
}

func (z *ZerologLogger) Info(_ context.Context, msg string, args ...any) {
	withFields(z.l.Info(), args).Msg(msg)
}

func (z *ZerologLogger) Warn(_ context.Context, msg string, args ...any) {
	withFields(z.l.Warn(), args).Msg(msg)
}

func (z *ZerologLogger) Error(_ context.Context, msg string, args ...any) {
	withFields(z.l.Error(), args).Msg(msg)
}

func (z *ZerologLogger) With(args ...any) Logger {
	c := z.l.With()
	for i := 0; i < len(args); i += 2 {
		key, val := pair(args, i)
		c = c.Interface(key, val)
	}
	return &ZerologLogger{l: c.Logger()}
}

func withFields(e *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i < len(args); i += 2 {
		key, val := pair(args, i)
		if err, ok := val.(error); ok {
			e = e.AnErr(key, err)
			continue
		}
		e = e.Interface(key, val)
	}
	return e
}

func pair(args []any, i int) (string, any) {
	if i+1 >= len(args) {
		return "!BADKEY", args[i]
	}
	key, ok := args[i].(string)
	if !ok {
		key = fmt.Sprint(args[i])
	}
	return key, args[i+1]
}
