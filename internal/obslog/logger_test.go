package obslog

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestZerologAdapterWritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "test-component")
	l.Info("built kernel", String("kernel", "Radix2FFT(16)"), Int("size", 16))

	out := buf.String()
	for _, want := range []string{"built kernel", "Radix2FFT(16)", "test-component", `"size":16`} {
		if !strings.Contains(out, want) {
			t.Errorf("log line %q missing %q", out, want)
		}
	}
}

func TestZerologAdapterError(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "test-component")
	l.Error("kernel construction failed", errors.New("boom"), Int("size", 7))

	out := buf.String()
	if !strings.Contains(out, "boom") {
		t.Errorf("log line %q missing error message", out)
	}
}

func TestNopLoggerDiscardsEverything(t *testing.T) {
	l := Nop()
	l.Info("should not panic")
	l.Debug("should not panic", Float64("x", 1.5))
	l.Error("should not panic", errors.New("ignored"), Err(errors.New("also ignored")))
}
