package zap

import (
	"github.com/unkn0wn-root/jsondt"
	"go.uber.org/zap"
)

var _ jsondt.Logger = Logger{}

// Logger adapts a zap.Logger to jsondt.Logger.
type Logger struct{ L *zap.Logger }

func (z Logger) Debug(msg string, f jsondt.Fields) { z.L.Debug(msg, fields(f)...) }
func (z Logger) Info(msg string, f jsondt.Fields)  { z.L.Info(msg, fields(f)...) }
func (z Logger) Warn(msg string, f jsondt.Fields)  { z.L.Warn(msg, fields(f)...) }
func (z Logger) Error(msg string, f jsondt.Fields) { z.L.Error(msg, fields(f)...) }

func fields(f jsondt.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
