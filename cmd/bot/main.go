package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"

	"hwbot/internal/app"
	"hwbot/internal/config"
	logx "hwbot/pkg/logx"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "path to config file (yaml or json, optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(cfgPath)
	if err != nil {
		boot := logx.NewConsole("INFO")
		if errors.Is(err, config.ErrMissingCredentials) {
			boot.Error("required environment variables are not set; bot stopped", logx.Err(err))
		} else {
			boot.Error("startup failed", logx.Err(err))
		}
		os.Exit(1)
	}

	if err := a.Start(ctx); err != nil {
		fmt.Println("fatal start:", err)
		os.Exit(1)
	}

	notifyReady(ctx)

	<-ctx.Done()
	_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()
	_ = a.Stop(stopCtx)
}

// notifyReady tells systemd the bot is up and keeps the watchdog fed when
// WatchdogSec is configured. Both are no-ops outside systemd.
func notifyReady(ctx context.Context) {
	_, _ = daemon.SdNotify(false, daemon.SdNotifyReady)

	iv, err := daemon.SdWatchdogEnabled(false)
	if err != nil || iv <= 0 {
		return
	}
	go func() {
		t := time.NewTicker(iv / 2)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				_, _ = daemon.SdNotify(false, daemon.SdNotifyWatchdog)
			}
		}
	}()
}
