package core

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

type LogLevel = log.Level

const (
	LogLevelDebug = log.DebugLevel
	LogLevelInfo  = log.InfoLevel
	LogLevelWarn  = log.WarnLevel
	LogLevelError = log.ErrorLevel
	LogLevelFatal = log.FatalLevel
)

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

func getLogger() *logger {
	once.Do(
		func() {
			l := log.NewWithOptions(os.Stderr, log.Options{
				ReportCaller:    true,
				ReportTimestamp: true,
				TimeFormat:      time.RFC3339,
				Prefix:          "Orbis 🌐 ",
				CallerOffset:    1,
			})
			l.SetLevel(log.InfoLevel)
			singleton = &logger{l}
		})
	return singleton
}

// ParseLogLevel converts a level name ("debug", "info", ...) into a LogLevel.
func ParseLogLevel(level string) (LogLevel, error) {
	return log.ParseLevel(level)
}

func SetLogLevel(level LogLevel) {
	getLogger().SetLevel(level)
}

func SetLogPrefix(prefix string) {
	getLogger().SetPrefix(prefix)
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}
