package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"ERROR": LevelError,
		"warn":  LevelWarn,
		" info": LevelInfo,
		"DEBUG": LevelDebug,
		"trace": LevelTrace,
		"":      LevelInfo,
		"loud":  LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Info("hidden %d", 1)
	l.Warn("shown %d", 2)
	l.Error("shown %d", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered, got %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 2") || !strings.Contains(out, "[ERROR] shown 3") {
		t.Fatalf("missing expected lines in %q", out)
	}
}

func TestLogger_NilIsSafe(t *testing.T) {
	var l *Logger
	l.Error("nothing happens")
}

func TestLogger_Writer(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)
	if l.Writer() != &buf {
		t.Fatalf("expected writer to be the destination buffer")
	}
}
