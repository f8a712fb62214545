package transport

import "context"

// ChatTarget addresses a chat (and optionally a forum topic thread).
type ChatTarget struct {
	ChatID   int64
	ThreadID int // telegram forum topic thread id (0 if none)
}

// MessageRef identifies a message that was sent.
type MessageRef struct {
	ChatID    int64
	ThreadID  int
	MessageID int
}

type SendOptions struct {
	ParseMode      string
	DisablePreview bool
}

// Sender is the outbound chat transport.
//
// hwbot never consumes incoming updates; the bot only pushes status change
// notifications, so the surface is deliberately send-only.
type Sender interface {
	SendText(ctx context.Context, to ChatTarget, text string, opt *SendOptions) (MessageRef, error)
}
