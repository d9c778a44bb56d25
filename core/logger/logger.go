package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

func init() {
	// Usable before Init so early boot failures are not silent.
	l, _ := zap.NewProduction()
	sugar = l.Sugar()
}

// Init replaces the default logger according to the environment. Call once
// from the server bootstrap, after config is loaded.
func Init(env string) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.DisableStacktrace = true

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		sugar.Errorw("Logger:Init:Error", "error", err)
		return
	}
	sugar = l.Sugar()
}

func Sync() {
	_ = sugar.Sync()
}

func Debug(msg string, keysAndValues ...any) { sugar.Debugw(msg, keysAndValues...) }
func Info(msg string, keysAndValues ...any)  { sugar.Infow(msg, keysAndValues...) }
func Warn(msg string, keysAndValues ...any)  { sugar.Warnw(msg, keysAndValues...) }
func Error(msg string, keysAndValues ...any) { sugar.Errorw(msg, keysAndValues...) }
func Fatal(msg string, keysAndValues ...any) { sugar.Fatalw(msg, keysAndValues...) }
