package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/jsondt"
)

var _ jsondt.Logger = Logger{}

// Logger adapts a logrus.Entry to jsondt.Logger.
type Logger struct{ E *logrus.Entry }

func (l Logger) Debug(msg string, f jsondt.Fields) { l.E.WithFields(logrus.Fields(f)).Debug(msg) }
func (l Logger) Info(msg string, f jsondt.Fields)  { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f jsondt.Fields)  { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f jsondt.Fields) { l.E.WithFields(logrus.Fields(f)).Error(msg) }
