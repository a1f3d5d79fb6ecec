// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
)

// Writer places text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// Func adapts a plain function to Writer.
type Func func(text string) error

// WriteText calls f(text).
func (f Func) WriteText(text string) error { return f(text) }

// Modes accepted by NewSystemWriter.
const (
	ModeAuto   = "auto"   // native clipboard, OSC 52 when unavailable
	ModeNative = "native" // native clipboard only
	ModeOSC52  = "osc52"  // terminal escape sequence only
)

// ErrUnavailable is returned when no clipboard mechanism can be used.
var ErrUnavailable = errors.New("no clipboard available")

// SystemWriter writes to the OS clipboard through atotto/clipboard and
// falls back to the OSC 52 escape sequence, which works over SSH in
// terminals that support it.
type SystemWriter struct {
	mode   string
	native func(string) error
	out    io.Writer
	// unsupported mirrors clipboard.Unsupported; overridable in tests.
	unsupported bool
}

// NewSystemWriter returns a SystemWriter for mode. Unknown modes are an error.
func NewSystemWriter(mode string) (*SystemWriter, error) {
	switch mode {
	case "", ModeAuto:
		mode = ModeAuto
	case ModeNative, ModeOSC52:
	default:
		return nil, fmt.Errorf("unknown clipboard mode %q (want auto, native or osc52)", mode)
	}
	return &SystemWriter{
		mode:        mode,
		native:      clipboard.WriteAll,
		out:         os.Stdout,
		unsupported: clipboard.Unsupported,
	}, nil
}

// Mode returns the configured mode.
func (w *SystemWriter) Mode() string {
	return w.mode
}

// WriteText copies text to the clipboard.
func (w *SystemWriter) WriteText(text string) error {
	switch w.mode {
	case ModeOSC52:
		return w.writeOSC52(text)
	case ModeNative:
		if w.unsupported {
			return ErrUnavailable
		}
		if err := w.native(text); err != nil {
			return fmt.Errorf("native clipboard: %w", err)
		}
		return nil
	}

	if !w.unsupported {
		if err := w.native(text); err == nil {
			return nil
		}
	}
	return w.writeOSC52(text)
}

func (w *SystemWriter) writeOSC52(text string) error {
	if w.out == nil {
		return ErrUnavailable
	}
	termenv.NewOutput(w.out).Copy(text)
	return nil
}
