package notifier

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"hwbot/internal/eventbus"
	"hwbot/internal/transport"
	logx "hwbot/pkg/logx"
)

type Config struct {
	RatePerSec int
	// SendTimeout bounds each delivery attempt so a hanging send can't stall
	// the poll cycle.
	SendTimeout time.Duration
}

// Service is the fire-and-forget notification boundary.
//
// Delivery failures never reach the caller: they are logged at error level
// and published on the bus, and the caller proceeds as if the send happened.
type Service struct {
	cfg     Config
	sender  transport.Sender
	target  transport.ChatTarget
	log     logx.Logger
	bus     eventbus.Bus
	limiter *rate.Limiter
}

// Event is emitted on the bus for every delivery attempt.
type Event struct {
	ChatID int64     `json:"chat_id"`
	Text   string    `json:"text"`
	At     time.Time `json:"at"`
	Error  string    `json:"error,omitempty"`
}

func New(cfg Config, sender transport.Sender, target transport.ChatTarget, log logx.Logger, bus eventbus.Bus) *Service {
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 3
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 10 * time.Second
	}
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Service{
		cfg:    cfg,
		sender: sender,
		target: target,
		log:    log,
		bus:    bus,
		// Token bucket: burst = rate per sec, so short spikes don't block too hard.
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.RatePerSec),
	}
}

// Notify delivers text to the configured chat. From the caller's perspective
// it cannot fail; outcomes are observable only via the log sink and the bus.
func (s *Service) Notify(ctx context.Context, text string) {
	if text == "" || s.sender == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s.log.Debug("sending notification", logx.String("text", text))

	if err := s.limiter.Wait(ctx); err != nil {
		s.fail(text, err)
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	_, err := s.sender.SendText(callCtx, s.target, text, nil)
	cancel()
	if err != nil {
		s.fail(text, err)
		return
	}

	s.log.Debug("notification sent", logx.String("text", text))
	if s.bus != nil {
		now := time.Now()
		s.bus.Publish(eventbus.Event{Type: "notifier.sent", Time: now, Data: Event{ChatID: s.target.ChatID, Text: text, At: now}})
	}
}

func (s *Service) fail(text string, err error) {
	s.log.Error("notification delivery failed", logx.Err(err), logx.String("text", text))
	if s.bus != nil {
		now := time.Now()
		s.bus.Publish(eventbus.Event{Type: "notifier.failed", Time: now, Data: Event{ChatID: s.target.ChatID, Text: text, At: now, Error: err.Error()}})
	}
}
