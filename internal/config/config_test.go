package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadCredentialsAllMissing(t *testing.T) {
	t.Setenv(EnvAPIToken, "")
	t.Setenv(EnvBotToken, "")
	t.Setenv(EnvChatID, "")

	_, err := LoadCredentials()
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	for _, name := range []string{EnvAPIToken, EnvBotToken, EnvChatID} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
}

func TestLoadCredentialsOK(t *testing.T) {
	t.Setenv(EnvAPIToken, "api")
	t.Setenv(EnvBotToken, "bot")
	t.Setenv(EnvChatID, "-1001234567890")

	creds, err := LoadCredentials()
	if err != nil {
		t.Fatalf("LoadCredentials error: %v", err)
	}
	if creds.APIToken != "api" || creds.BotToken != "bot" {
		t.Fatalf("creds = %+v", creds)
	}
	if creds.ChatID != -1001234567890 {
		t.Fatalf("ChatID = %d", creds.ChatID)
	}
}

func TestLoadCredentialsBadChatID(t *testing.T) {
	t.Setenv(EnvAPIToken, "api")
	t.Setenv(EnvBotToken, "bot")
	t.Setenv(EnvChatID, "not-a-number")

	_, err := LoadCredentials()
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestLoadEmptyPathServesDefault(t *testing.T) {
	t.Parallel()
	m := NewConfigManager("")
	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Logging.Level != "INFO" || !cfg.Logging.Console {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
logging:
  level: DEBUG
  console: true
  file:
    enabled: false
    path: ""
http:
  timeout: 15s
notifier:
  rate_per_sec: 1
  send_timeout: 5s
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	m := NewConfigManager(path)
	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Fatalf("level = %q", cfg.Logging.Level)
	}
	if cfg.HTTP.Timeout != "15s" || cfg.Notifier.RatePerSec != 1 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
logging:
  level: INFO
  consle: true
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	m := NewConfigManager(path)
	if _, err := m.Load(); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestParseDurationField(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{name: "empty", raw: "", want: 0},
		{name: "seconds", raw: "30s", want: 30 * time.Second},
		{name: "spaces trimmed", raw: " 1m ", want: time.Minute},
		{name: "garbage", raw: "soon", wantErr: true},
		{name: "negative", raw: "-5s", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDurationField("test.field", tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDurationOrDefault(t *testing.T) {
	t.Parallel()
	got, err := ParseDurationOrDefault("test.field", "", 30*time.Second)
	if err != nil || got != 30*time.Second {
		t.Fatalf("got %v, %v", got, err)
	}
	got, err = ParseDurationOrDefault("test.field", "10s", 30*time.Second)
	if err != nil || got != 10*time.Second {
		t.Fatalf("got %v, %v", got, err)
	}
}
