package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables carrying the three secrets. All are required; the
// process refuses to start without them.
const (
	EnvAPIToken = "API_TOKEN"
	EnvBotToken = "NOTIFIER_TOKEN"
	EnvChatID   = "NOTIFIER_CHAT_ID"
)

// ErrMissingCredentials marks the only fatal, non-retried startup condition.
var ErrMissingCredentials = errors.New("missing credentials")

// Credentials are sourced once at startup and immutable afterwards.
type Credentials struct {
	APIToken string
	BotToken string
	ChatID   int64
}

// LoadCredentials reads the three required secrets from the environment.
// Every missing or empty variable is reported so the operator can fix all of
// them in one go.
func LoadCredentials() (Credentials, error) {
	var missing []string

	apiToken := strings.TrimSpace(os.Getenv(EnvAPIToken))
	if apiToken == "" {
		missing = append(missing, EnvAPIToken)
	}
	botToken := strings.TrimSpace(os.Getenv(EnvBotToken))
	if botToken == "" {
		missing = append(missing, EnvBotToken)
	}
	rawChat := strings.TrimSpace(os.Getenv(EnvChatID))
	if rawChat == "" {
		missing = append(missing, EnvChatID)
	}

	if len(missing) > 0 {
		return Credentials{}, fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}

	chatID, err := strconv.ParseInt(rawChat, 10, 64)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: %s is not a chat id: %v", ErrMissingCredentials, EnvChatID, err)
	}

	return Credentials{
		APIToken: apiToken,
		BotToken: botToken,
		ChatID:   chatID,
	}, nil
}
