package report

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AuditLogger appends JSON-lines run events to a file.
type AuditLogger struct {
	file *os.File
	core zapcore.Core
}

func NewAuditLogger(path string) (*AuditLogger, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil && dir != "." {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "timestamp"
	enc.MessageKey = "event"
	enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	return &AuditLogger{
		file: f,
		core: zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(f), zapcore.DebugLevel),
	}, nil
}

// Tee returns a logger writing to both base and the audit file.
func (l *AuditLogger) Tee(base *zap.Logger) *zap.Logger {
	if base == nil {
		base = zap.NewNop()
	}
	if l == nil || l.core == nil {
		return base
	}
	return zap.New(zapcore.NewTee(base.Core(), l.core))
}

func (l *AuditLogger) Close() {
	if l == nil || l.file == nil {
		return
	}
	_ = l.core.Sync()
	_ = l.file.Close()
}
