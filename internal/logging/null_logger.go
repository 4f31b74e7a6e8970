package logging

import "github.com/vvka-141/vfsim/pkg/vfsim"

var _ vfsim.Logger = (*NullLogger)(nil)

// NullLogger drops every message. Sessions built without a logger use it.
type NullLogger struct{}

func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) Verbose(string, ...interface{}) {}

func (*NullLogger) Info(string, ...interface{}) {}

func (*NullLogger) Error(string, ...interface{}) {}
