package algofft

import (
	"github.com/cwbudde/algofft/internal/fftcore"
	"github.com/cwbudde/algofft/internal/obslog"
)

// Logger is the structured logging interface construction-time
// diagnostics are written through. The hot transform path never logs.
type Logger = obslog.Logger

// Field is a key-value pair attached to a log line.
type Field = obslog.Field

// NewDefaultLogger returns a Logger writing structured lines to stderr.
func NewDefaultLogger() Logger { return obslog.NewDefaultLogger() }

// SetLogger installs the Logger every subsequent MakeFFT call logs
// kernel construction through. Passing nil discards all diagnostics.
func SetLogger(l Logger) { fftcore.SetLogger(l) }
