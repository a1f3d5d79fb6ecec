package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func newTestWriter(mode string, native func(string) error, unsupported bool) (*SystemWriter, *bytes.Buffer) {
	var out bytes.Buffer
	return &SystemWriter{mode: mode, native: native, out: &out, unsupported: unsupported}, &out
}

func TestNewSystemWriterModes(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{"", ModeAuto, ModeNative, ModeOSC52} {
		w, err := NewSystemWriter(mode)
		if err != nil {
			t.Fatalf("NewSystemWriter(%q): %v", mode, err)
		}
		if mode == "" && w.Mode() != ModeAuto {
			t.Fatalf("empty mode resolved to %q, want auto", w.Mode())
		}
	}
	if _, err := NewSystemWriter("pigeon"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestAutoPrefersNative(t *testing.T) {
	t.Parallel()

	var got string
	w, out := newTestWriter(ModeAuto, func(s string) error { got = s; return nil }, false)
	if err := w.WriteText("**hi**"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if got != "**hi**" {
		t.Fatalf("native got %q", got)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected OSC 52 output %q", out.String())
	}
}

func TestAutoFallsBackToOSC52(t *testing.T) {
	t.Parallel()

	w, out := newTestWriter(ModeAuto, func(string) error { return errors.New("no xclip") }, false)
	if err := w.WriteText("hello"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	want := base64.StdEncoding.EncodeToString([]byte("hello"))
	if !strings.Contains(out.String(), want) {
		t.Fatalf("OSC 52 output %q missing payload %q", out.String(), want)
	}
}

func TestNativeModeReportsFailure(t *testing.T) {
	t.Parallel()

	w, out := newTestWriter(ModeNative, func(string) error { return errors.New("boom") }, false)
	if err := w.WriteText("x"); err == nil {
		t.Fatal("expected error")
	}
	if out.Len() != 0 {
		t.Fatal("native mode must not emit OSC 52")
	}

	w, _ = newTestWriter(ModeNative, func(string) error { return nil }, true)
	if err := w.WriteText("x"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestOSC52ModeSkipsNative(t *testing.T) {
	t.Parallel()

	called := false
	w, out := newTestWriter(ModeOSC52, func(string) error { called = true; return nil }, false)
	if err := w.WriteText("x"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if called {
		t.Fatal("native clipboard called in osc52 mode")
	}
	if !strings.Contains(out.String(), "\x1b]52;c;") {
		t.Fatalf("output %q is not an OSC 52 sequence", out.String())
	}
}

func TestFuncAdapter(t *testing.T) {
	t.Parallel()

	var got string
	var w Writer = Func(func(s string) error { got = s; return nil })
	if err := w.WriteText("abc"); err != nil || got != "abc" {
		t.Fatalf("Func.WriteText = %q, %v", got, err)
	}
}
