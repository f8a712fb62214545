package practicum

import (
	"errors"
	"testing"
)

func TestParseStatusVerdicts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		status string
		want   string
	}{
		{"approved", `Changed review status of work "Sprint 1". work reviewed: reviewer liked everything`},
		{"reviewing", `Changed review status of work "Sprint 1". work has been taken up for review`},
		{"rejected", `Changed review status of work "Sprint 1". work reviewed: reviewer has remarks`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.status, func(t *testing.T) {
			got, err := ParseStatus(map[string]any{
				"status":        tt.status,
				"homework_name": "Sprint 1",
			})
			if err != nil {
				t.Fatalf("ParseStatus error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseStatus = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseStatusUnknown(t *testing.T) {
	t.Parallel()
	_, err := ParseStatus(map[string]any{
		"status":        "in_progress",
		"homework_name": "Sprint 1",
	})
	var ue *UnknownStatusError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UnknownStatusError, got %v", err)
	}
	if ue.Status != "in_progress" {
		t.Fatalf("Status = %q, want %q", ue.Status, "in_progress")
	}
}

func TestParseStatusShape(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		rec     any
		missing string // expected MissingFieldError key; empty means FormatError
	}{
		{name: "not an object", rec: []any{"status"}},
		{name: "missing status", rec: map[string]any{"homework_name": "Sprint 1"}, missing: "status"},
		{name: "status not string", rec: map[string]any{"status": 3, "homework_name": "Sprint 1"}},
		{name: "missing name", rec: map[string]any{"status": "approved"}, missing: "homework_name"},
		{name: "name not string", rec: map[string]any{"status": "approved", "homework_name": 42.0}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStatus(tt.rec)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.missing != "" {
				var me *MissingFieldError
				if !errors.As(err, &me) {
					t.Fatalf("expected MissingFieldError, got %v", err)
				}
				if me.Key != tt.missing {
					t.Fatalf("Key = %q, want %q", me.Key, tt.missing)
				}
				return
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("expected FormatError, got %v", err)
			}
		})
	}
}
