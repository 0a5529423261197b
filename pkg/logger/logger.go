package logger

import (
	"log"

	"go.uber.org/zap"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

var global = zap.NewNop()

// SetupLogger builds the application logger for the given environment and
// installs it as the package global used by the HTTP and service layers.
func SetupLogger(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)

	switch env {
	case envLocal:
		l, err = zap.NewDevelopment()
	case envProd:
		l, err = zap.NewProduction()
	default:
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("cannot build logger: %s", err)
	}

	global = l
	return l
}

// Logger returns the global logger.
func Logger() *zap.Logger {
	return global
}

func Debug(msg string, fields ...zap.Field) {
	global.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	global.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	global.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	global.Error(msg, fields...)
}
