package logx

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" info ", zerolog.InfoLevel},
		{"Warning", zerolog.WarnLevel},
		{"ERROR", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in, zerolog.InfoLevel); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestZeroLoggerIsSafe(t *testing.T) {
	t.Parallel()
	var l Logger
	if !l.IsZero() {
		t.Fatal("zero value should report IsZero")
	}
	// Must not panic.
	l.Info("ignored")
	l.With(String("k", "v")).Error("ignored", Err(nil))
}

func TestNopLoggerIsNotZero(t *testing.T) {
	t.Parallel()
	l := Nop()
	if l.IsZero() {
		t.Fatal("Nop() must not be the zero value, components use IsZero to substitute it")
	}
	l.Info("ignored")
}
