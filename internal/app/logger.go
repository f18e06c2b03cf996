package app

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the component-scoped logging interface used across the pipeline.
type Logger interface {
	Debugf(component string, format string, args ...interface{})
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Debugf(component, format string, args ...interface{}) {}
func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// LogrusLogger adapts a logrus logger, tagging entries with a component field.
type LogrusLogger struct{ log *logrus.Logger }

func NewLogrusLogger(l *logrus.Logger) LogrusLogger { return LogrusLogger{log: l} }

func (l LogrusLogger) Debugf(component string, format string, args ...interface{}) {
	l.log.WithField("component", component).Debugf(format, args...)
}
func (l LogrusLogger) Infof(component string, format string, args ...interface{}) {
	l.log.WithField("component", component).Infof(format, args...)
}
func (l LogrusLogger) Errorf(component string, format string, args ...interface{}) {
	l.log.WithField("component", component).Errorf(format, args...)
}

// NewLogrus builds the process logger: text output with full timestamps,
// debug level when requested.
func NewLogrus(w io.Writer, debug bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}
