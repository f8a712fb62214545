package adapter

import (
	"strings"
	"testing"

	logx "hwbot/pkg/logx"
)

func TestNewRejectsEmptyToken(t *testing.T) {
	t.Parallel()
	if _, err := New(Config{Token: "   "}, logx.Nop()); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestSplitTelegramTextShort(t *testing.T) {
	t.Parallel()
	got := splitTelegramText("hello", 10)
	if len(got) != 1 || got[0] != "hello" {
		t.Fatalf("got %v", got)
	}
}

func TestSplitTelegramTextPrefersNewlines(t *testing.T) {
	t.Parallel()
	text := strings.Repeat("line one\n", 3) + "tail"
	got := splitTelegramText(text, 12)
	for i, chunk := range got {
		if len([]rune(chunk)) > 12 {
			t.Fatalf("chunk %d too long: %q", i, chunk)
		}
		if strings.HasPrefix(chunk, "\n") || strings.HasSuffix(chunk, "\n") {
			t.Fatalf("chunk %d has dangling newline: %q", i, chunk)
		}
	}
	if joined := strings.Join(got, "\n"); !strings.Contains(joined, "tail") {
		t.Fatalf("tail lost: %v", got)
	}
}

func TestSplitTelegramTextLong(t *testing.T) {
	t.Parallel()
	text := strings.Repeat("a", 25)
	got := splitTelegramText(text, 10)
	if len(got) != 3 {
		t.Fatalf("chunks = %d, want 3", len(got))
	}
	total := 0
	for i, chunk := range got {
		if len([]rune(chunk)) > 10 {
			t.Fatalf("chunk %d too long: %q", i, chunk)
		}
		total += len(chunk)
	}
	if total != 25 {
		t.Fatalf("total runes = %d, want 25", total)
	}
}
