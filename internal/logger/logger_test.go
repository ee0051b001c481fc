package logger

import "testing"

type logCfg struct {
	level string
	dev   bool
}

func (c logCfg) Level() string     { return c.level }
func (c logCfg) Development() bool { return c.dev }

func TestNew(t *testing.T) {
	l, err := New(logCfg{level: "debug", dev: true})
	if err != nil {
		t.Fatalf("new returned error: %v", err)
	}
	if !l.Core().Enabled(-1) {
		t.Fatalf("debug level should be enabled")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(logCfg{level: "loud"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
