package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Debug bool

var sugar = newLogger().Sugar()

func newLogger() *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(os.Stderr),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

// SetLogger routes all output to l. Printf output still requires Debug.
func SetLogger(l *zap.Logger) {
	sugar = l.Sugar()
}

func Printf(format string, v ...interface{}) {
	if Debug {
		sugar.Debugf(format, v...)
	}
}

func Infof(format string, v ...interface{}) {
	sugar.Infof(format, v...)
}

func Errorf(format string, v ...interface{}) {
	sugar.Errorf(format, v...)
}

func Fatalf(format string, v ...interface{}) {
	sugar.Fatalf(format, v...)
}

func Sync() error {
	return sugar.Sync()
}
