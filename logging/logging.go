// Package logging configures the rolling file logger. The terminal owns
// stdout while the game runs, so all diagnostics go to a file.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a SugaredLogger writing to a size-rotated file.
// The returned sync function flushes buffers and is safe to defer.
func New(filePath string) (*zap.SugaredLogger, func()) {
	lj := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   false,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), zapcore.InfoLevel)
	logger := zap.New(core, zap.AddCaller())

	sugar := logger.Sugar()
	return sugar, func() { _ = sugar.Sync() }
}

// Nop returns a logger that discards everything, for tests
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
