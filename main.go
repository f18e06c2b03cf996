// Command appicon renders the EV Route app icon into the Xcode asset catalog.
//
// It takes no arguments. Run it from the app directory so the default output
// path Assets.xcassets/AppIcon.appiconset/AppIcon.png resolves correctly.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/evroute/appicon/internal/app"
	"github.com/evroute/appicon/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}

	// Best-effort: capture everything written to stdout/stderr, panics included.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	log := app.NewLogrus(os.Stderr, cfg.Debug)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.WithError(err).Warn("log file open failed")
		} else {
			defer f.Close()
			log.SetOutput(io.MultiWriter(os.Stderr, f))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg)
	a.Logger = app.NewLogrusLogger(log)
	path, err := a.Run(ctx)
	if err != nil {
		log.WithError(err).Error("app icon generation failed")
		return 1
	}
	fmt.Println("App icon created at:", path)
	return 0
}
