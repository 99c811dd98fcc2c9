// Package zerologadapter provides a logger that writes to a github.com/rs/zerolog.
package zerologadapter

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/myqdrv/myq"
)

type Logger struct {
	logger zerolog.Logger
}

// NewLogger accepts a zerolog.Logger as input and returns a new custom myq
// logging facade as output.
func NewLogger(logger zerolog.Logger) *Logger {
	return &Logger{
		logger: logger.With().Str("module", "myq").Logger(),
	}
}

func (l *Logger) Log(ctx context.Context, level myq.LogLevel, msg string, data map[string]interface{}) {
	var zlevel zerolog.Level
	switch level {
	case myq.LogLevelNone:
		zlevel = zerolog.NoLevel
	case myq.LogLevelError:
		zlevel = zerolog.ErrorLevel
	case myq.LogLevelWarn:
		zlevel = zerolog.WarnLevel
	case myq.LogLevelInfo:
		zlevel = zerolog.InfoLevel
	case myq.LogLevelDebug:
		zlevel = zerolog.DebugLevel
	default:
		zlevel = zerolog.DebugLevel
	}

	myqlog := l.logger.With().Fields(data).Logger()
	myqlog.WithLevel(zlevel).Msg(msg)
}
