package config

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the app logger. Structured JSON goes to a rotated
// file at Info; the console only sees warnings so the CLI output stays
// clean. An empty logPath defaults to ~/.healing-journey.log.
func NewLogger(logPath string) (*zap.SugaredLogger, error) {
	if logPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		logPath = filepath.Join(home, ".healing-journey.log")
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     30, // days
		}),
		zap.InfoLevel,
	)

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		zap.WarnLevel,
	)

	logger := zap.New(zapcore.NewTee(fileCore, consoleCore), zap.AddStacktrace(zap.ErrorLevel))
	return logger.Sugar(), nil
}
