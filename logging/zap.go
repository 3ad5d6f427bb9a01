package logging

import (
	"go.elastic.co/ecszap"
	"go.uber.org/zap"
)

// ZapLogger adapts a zap.Logger to the Logger contract.
type ZapLogger struct {
	z *zap.Logger
}

// NewZapLogger builds a development zap logger with an ECS-compatible
// encoder, the shape the Elastic Stack ingests directly. The returned flush
// func syncs buffered entries and belongs in a defer at shutdown.
func NewZapLogger() (*ZapLogger, func() error, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig = ecszap.ECSCompatibleEncoderConfig(cfg.EncoderConfig)

	z, err := cfg.Build(ecszap.WrapCoreOption(), zap.AddCallerSkip(1))
	if err != nil {
		return nil, nil, err
	}
	return &ZapLogger{z: z}, z.Sync, nil
}

// WrapZap adapts an existing zap.Logger the host application already owns.
// Panics if z is nil.
func WrapZap(z *zap.Logger) *ZapLogger {
	if z == nil {
		panic("logging: WrapZap requires a non-nil zap.Logger")
	}
	return &ZapLogger{z: z}
}

// Write maps a level onto the matching zap call. Fatal does not exit the
// process — the contract is severity labelling, not lifecycle control — so
// it lands on zap's error level with a marker field.
func (l *ZapLogger) Write(level Level, message string) {
	switch level {
	case LevelDebug:
		l.z.Debug(message)
	case LevelInfo:
		l.z.Info(message)
	case LevelWarn:
		l.z.Warn(message)
	case LevelError:
		l.z.Error(message)
	case LevelFatal:
		l.z.Error(message, zap.String("severity", "fatal"))
	}
}

// WriteError writes message with the error attached as a structured field.
func (l *ZapLogger) WriteError(level Level, message string, err error) {
	switch level {
	case LevelDebug:
		l.z.Debug(message, zap.Error(err))
	case LevelInfo:
		l.z.Info(message, zap.Error(err))
	case LevelWarn:
		l.z.Warn(message, zap.Error(err))
	case LevelError:
		l.z.Error(message, zap.Error(err))
	case LevelFatal:
		l.z.Error(message, zap.Error(err), zap.String("severity", "fatal"))
	}
}
