package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logg = newLogger(os.Stdout, logrus.InfoLevel)

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(level)
	l.SetOutput(out)
	return l
}

func GetLogger() *logrus.Logger {
	return logg
}

// SetupLogger applies LOG_LEVEL from the loaded config. Unknown levels keep info.
func SetupLogger() *logrus.Logger {
	level, err := logrus.ParseLevel(GetConfig("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logg.SetLevel(level)
	return logg
}

func LogError(logger *logrus.Logger, moduleName string, funcName string, context string, data any, err error) {
	fields := logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}
	if data != nil {
		fields["data"] = data
	}
	logger.WithFields(fields).Error(err.Error())
}
