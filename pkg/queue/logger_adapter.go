package queue

import (
	"github.com/rs/zerolog"
)

type (
	// LoggerAdapter exposes a zerolog.Logger through the queue Logger interface.
	LoggerAdapter struct {
		logger zerolog.Logger
	}

	LogEventAdapter struct {
		event *zerolog.Event
	}
)

func NewLoggerAdapter(logger zerolog.Logger) *LoggerAdapter {
	return &LoggerAdapter{
		logger: logger.With().Str("component", "queue").Logger(),
	}
}

func nopLogger() *LoggerAdapter {
	return &LoggerAdapter{logger: zerolog.Nop()}
}

func (l *LoggerAdapter) Info() LogEvent {
	return &LogEventAdapter{event: l.logger.Info()}
}

func (l *LoggerAdapter) Warn() LogEvent {
	return &LogEventAdapter{event: l.logger.Warn()}
}

func (l *LoggerAdapter) Error() LogEvent {
	return &LogEventAdapter{event: l.logger.Error()}
}

func (l *LoggerAdapter) Debug() LogEvent {
	return &LogEventAdapter{event: l.logger.Debug()}
}

// Msg sends the event. A disabled level yields a nil event, which zerolog
// treats as a no-op.
func (e *LogEventAdapter) Msg(msg string) {
	e.event.Msg(msg)
}

func (e *LogEventAdapter) Err(err error) LogEvent {
	e.event = e.event.Err(err)

	return e
}

func (e *LogEventAdapter) Str(key, value string) LogEvent {
	e.event = e.event.Str(key, value)

	return e
}

func (e *LogEventAdapter) Int(key string, value int) LogEvent {
	e.event = e.event.Int(key, value)

	return e
}
