package app

import (
	"context"
	"time"

	"hwbot/internal/config"
	"hwbot/internal/eventbus"
	"hwbot/internal/notifier"
	"hwbot/internal/poller"
	"hwbot/internal/practicum"
	"hwbot/internal/runtime/supervisor"
	"hwbot/internal/transport"
	telegram "hwbot/internal/transport/telegram/adapter"
	logx "hwbot/pkg/logx"
)

type App struct {
	cfgm  *config.ConfigManager
	creds config.Credentials

	log  logx.Logger
	logs *logx.Service
	bus  eventbus.Bus

	sender transport.Sender
	notif  *notifier.Service
	client *practicum.Client
	poll   *poller.Poller

	sup *supervisor.Supervisor
}

func New(cfgPath string) (*App, error) {
	// Credentials first: nothing is worth constructing without them.
	creds, err := config.LoadCredentials()
	if err != nil {
		return nil, err
	}

	cfgm := config.NewConfigManager(cfgPath)
	cfg, err := cfgm.Load()
	if err != nil {
		return nil, err
	}

	logSvc, log := logx.New(mapLogging(cfg))
	log = log.With(logx.String("comp", "app"))

	ad, err := telegram.New(telegram.Config{Token: creds.BotToken},
		log.With(logx.String("comp", "telegram")))
	if err != nil {
		return nil, err
	}

	bus := eventbus.New()

	ncfg, err := mapNotifierConfig(cfg)
	if err != nil {
		return nil, err
	}
	target := transport.ChatTarget{ChatID: creds.ChatID}
	notif := notifier.New(ncfg, ad, target, log.With(logx.String("comp", "notifier")), bus)

	httpTimeout, err := config.ParseDurationOrDefault("http.timeout", cfg.HTTP.Timeout, 30*time.Second)
	if err != nil {
		return nil, err
	}
	client := practicum.NewClient(practicum.Config{
		Token:   creds.APIToken,
		Timeout: httpTimeout,
	}, log.With(logx.String("comp", "practicum")))

	poll := poller.New(client, notif, log.With(logx.String("comp", "poller")), bus)

	return &App{
		cfgm:   cfgm,
		creds:  creds,
		log:    log,
		logs:   logSvc,
		bus:    bus,
		sender: ad,
		notif:  notif,
		client: client,
		poll:   poll,
	}, nil
}

// Done is closed when the app supervisor context is canceled (fatal error or Stop()).
func (a *App) Done() <-chan struct{} {
	if a.sup == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return a.sup.Context().Done()
}

// Err returns the first fatal error observed by the supervisor (if any).
func (a *App) Err() error {
	if a.sup == nil {
		return nil
	}
	return a.sup.Err()
}

func (a *App) Start(ctx context.Context) error {
	a.sup = supervisor.NewSupervisor(ctx,
		supervisor.WithLogger(a.log),
		supervisor.WithCancelOnError(false),
	)

	// transactional config reload: validate before commit/publish
	a.cfgm.SetLogger(a.log.With(logx.String("comp", "config")))
	a.cfgm.SetValidator(func(c context.Context, cfg *config.Config) error {
		if _, err := config.ParseDurationField("http.timeout", cfg.HTTP.Timeout); err != nil {
			return err
		}
		if _, err := mapNotifierConfig(cfg); err != nil {
			return err
		}
		return nil
	})

	a.sup.Go("poller.run", func(c context.Context) error {
		return a.poll.Run(c)
	})

	// Log lifecycle events for observability/debug.
	events, unsub := a.bus.Subscribe(128)
	a.sup.Go0("eventbus.log", func(c context.Context) {
		defer unsub()
		for {
			select {
			case <-c.Done():
				return
			case e, ok := <-events:
				if !ok {
					return
				}
				a.log.Debug("event", logx.String("type", e.Type), logx.Time("time", e.Time))
			}
		}
	})

	// hot reload: only the logging section is live. Credentials, endpoint
	// and loop timing are fixed for the process lifetime.
	sub := a.cfgm.Subscribe(8)
	a.sup.Go0("config.reload", func(c context.Context) {
		defer a.cfgm.Unsubscribe(sub)
		for {
			select {
			case <-c.Done():
				return
			case newCfg, ok := <-sub:
				if !ok {
					return
				}
				a.logs.Apply(mapLogging(newCfg))
				a.log.Info("config reloaded (logging applied)")
			}
		}
	})

	a.sup.Go("config.watch", func(c context.Context) error {
		return a.cfgm.Watch(c)
	})

	a.log.Info("bot started", logx.Duration("retry_period", poller.RetryPeriod))
	return nil
}

func (a *App) Stop(ctx context.Context) error {
	if a.sup == nil {
		return nil
	}
	a.log.Info("stopping")
	a.sup.Cancel()
	err := a.sup.Wait(ctx)
	a.log.Info("stopped")
	if a.logs != nil {
		_ = a.logs.Close()
	}
	return err
}

func mapLogging(cfg *config.Config) logx.Config {
	return logx.Config{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		File: logx.FileConfig{
			Enabled: cfg.Logging.File.Enabled,
			Path:    cfg.Logging.File.Path,
		},
	}
}

func mapNotifierConfig(cfg *config.Config) (notifier.Config, error) {
	sendTimeout, err := config.ParseDurationOrDefault("notifier.send_timeout", cfg.Notifier.SendTimeout, 10*time.Second)
	if err != nil {
		return notifier.Config{}, err
	}
	return notifier.Config{
		RatePerSec:  cfg.Notifier.RatePerSec,
		SendTimeout: sendTimeout,
	}, nil
}
