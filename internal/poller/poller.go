package poller

import (
	"context"
	"errors"
	"time"

	"hwbot/internal/eventbus"
	"hwbot/internal/practicum"
	logx "hwbot/pkg/logx"
)

// RetryPeriod is the fixed pause between poll cycles. Success and failure
// wait the same period; there is no backoff.
const RetryPeriod = 600 * time.Second

const failurePrefix = "Program failure: "

// Client fetches the raw status payload for a from_date cursor.
type Client interface {
	Fetch(ctx context.Context, from int64) (any, error)
}

// Notifier is the fire-and-forget notification boundary.
type Notifier interface {
	Notify(ctx context.Context, text string)
}

// Poller owns the poll cycle state: the from_date cursor and the text of the
// last error notification. Both are touched only by the loop iteration in
// progress; the type is not safe for concurrent use.
type Poller struct {
	client   Client
	notifier Notifier
	log      logx.Logger
	bus      eventbus.Bus

	interval time.Duration
	now      func() time.Time

	cursor  int64
	lastErr string
}

type Option func(*Poller)

// WithInterval overrides the pause between cycles (tests only).
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithClock overrides the cursor clock (tests only).
func WithClock(now func() time.Time) Option {
	return func(p *Poller) {
		if now != nil {
			p.now = now
		}
	}
}

func New(client Client, notifier Notifier, log logx.Logger, bus eventbus.Bus, opts ...Option) *Poller {
	if log.IsZero() {
		log = logx.Nop()
	}
	p := &Poller{
		client:   client,
		notifier: notifier,
		log:      log,
		bus:      bus,
		interval: RetryPeriod,
		now:      time.Now,
	}
	for _, o := range opts {
		o(p)
	}
	p.cursor = p.now().Unix()
	return p
}

// Cursor returns the current from_date cursor (Unix seconds).
func (p *Poller) Cursor() int64 { return p.cursor }

// LastError returns the text of the last error notification.
func (p *Poller) LastError() string { return p.lastErr }

// Run executes poll cycles until ctx is canceled, sleeping the fixed
// interval between cycles regardless of outcome.
func (p *Poller) Run(ctx context.Context) error {
	for {
		p.RunCycle(ctx)

		t := time.NewTimer(p.interval)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}

// RunCycle performs one fetch, validate, format, notify pass. Every failure
// inside the pass is absorbed here: logged, and forwarded to the chat unless
// it repeats the previous error text verbatim.
func (p *Poller) RunCycle(ctx context.Context) {
	if err := p.cycle(ctx); err != nil {
		p.failCycle(ctx, err)
	}
}

func (p *Poller) cycle(ctx context.Context) error {
	resp, err := p.client.Fetch(ctx, p.cursor)
	if err != nil {
		return err
	}

	homeworks, err := practicum.CheckResponse(resp)
	if err != nil {
		return err
	}

	if len(homeworks) == 0 {
		p.log.Debug("status unchanged", logx.Int64("cursor", p.cursor))
		return nil
	}

	message, err := practicum.ParseStatus(homeworks[0])
	if err != nil {
		return err
	}

	p.notifier.Notify(ctx, message)

	// The cursor advances only after a cycle that observed homework records;
	// a failed cycle re-queries the same window next time.
	p.cursor = p.now().Unix()

	p.log.Info("review status changed", logx.String("message", message))
	if p.bus != nil {
		p.bus.Publish(eventbus.Event{Type: "poller.status_changed", Data: message})
	}
	return nil
}

func (p *Poller) failCycle(ctx context.Context, err error) {
	// Shutdown races surface as canceled fetches; they are not failures.
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return
	}

	message := failurePrefix + err.Error()
	p.log.Error("poll cycle failed", logx.Err(err), logx.Int64("cursor", p.cursor))
	if p.bus != nil {
		p.bus.Publish(eventbus.Event{Type: "poller.cycle_failed", Data: message})
	}

	// The same error repeating across cycles produces one notification; any
	// new error text always produces a fresh one. The remembered text is
	// never cleared on success.
	if message != p.lastErr {
		p.notifier.Notify(ctx, message)
		p.lastErr = message
	}
}
