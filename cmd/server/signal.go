package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// WaitForShutdown blocks until SIGINT or SIGTERM arrives or a server reports a fatal error.
func WaitForShutdown(serverErrs <-chan error) {
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sc)

	select {
	case sig := <-sc:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-serverErrs:
		slog.Error("Server stopped unexpectedly", "error", err)
	}
}
