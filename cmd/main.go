package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/registrydata/appointments-backend/internal/app"
)

func main() {
	ctx := context.Background()

	application, err := app.New(ctx)
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		application.Close(shutdownCtx)
		os.Exit(0)
	}()

	application.Log.Info("Server listening", "port", application.Cfg.Port)
	if err := application.Run(); err != nil {
		application.Log.Error("Server failed", "error", err)
		application.Close(ctx)
		os.Exit(1)
	}
}
