package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the narrow logging surface the rest of the app depends on.
type Logger interface {
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	WithFields(fields map[string]interface{}) Logger
}

type logger struct {
	entry *logrus.Entry
}

// New builds a logrus-backed logger at the given level ("debug", "info",
// "warn", "error"); anything else falls back to info.
func New(level string) Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	switch level {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "info":
		log.SetLevel(logrus.InfoLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	return &logger{entry: logrus.NewEntry(log)}
}

func (l *logger) Info(args ...interface{})                 { l.entry.Info(args...) }
func (l *logger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }
func (l *logger) Warn(args ...interface{})                 { l.entry.Warn(args...) }
func (l *logger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }
func (l *logger) Error(args ...interface{})                { l.entry.Error(args...) }
func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}
func (l *logger) Debug(args ...interface{})                 { l.entry.Debug(args...) }
func (l *logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }

func (l *logger) WithFields(fields map[string]interface{}) Logger {
	return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}
