package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alovak/vinflow-playground/decoder"
	"golang.org/x/exp/slog"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout))

	app := decoder.NewApp(logger, decoder.DefaultConfig())
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	app.Shutdown()
}
