package common

import "go.uber.org/zap"

// ZapLogger adapts a zap.Logger to the Logger interface so the decoder can
// feed its diagnostics into a structured logging pipeline.
type ZapLogger struct {
	z *zap.SugaredLogger
}

// NewZapLogger wraps an existing zap logger.
func NewZapLogger(z *zap.Logger) *ZapLogger {
	// Skip one frame so call sites report the decoder, not this adapter.
	return &ZapLogger{z: z.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

// Log logs a message with the specified severity
func (l *ZapLogger) Log(severity Severity, msg string) {
	switch severity {
	case SeverityDebug:
		l.z.Debug(msg)
	case SeverityInfo:
		l.z.Info(msg)
	case SeverityWarning:
		l.z.Warn(msg)
	case SeverityError:
		l.z.Error(msg)
	}
}

// Logf logs a formatted message with the specified severity
func (l *ZapLogger) Logf(severity Severity, format string, args ...interface{}) {
	switch severity {
	case SeverityDebug:
		l.z.Debugf(format, args...)
	case SeverityInfo:
		l.z.Infof(format, args...)
	case SeverityWarning:
		l.z.Warnf(format, args...)
	case SeverityError:
		l.z.Errorf(format, args...)
	}
}

// Error logs an error
func (l *ZapLogger) Error(err error) {
	if err != nil {
		l.z.Error(err.Error())
	}
}

// Debug logs a debug message
func (l *ZapLogger) Debug(msg string) { l.z.Debug(msg) }

// Info logs an info message
func (l *ZapLogger) Info(msg string) { l.z.Info(msg) }

// Warning logs a warning message
func (l *ZapLogger) Warning(msg string) { l.z.Warn(msg) }
