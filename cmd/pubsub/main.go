package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	clientcmd "github.com/gonzalojpv/pubsub-api-client/internal/cmd/client"
	logpkg "github.com/gonzalojpv/pubsub-api-client/pkg/log"
)

func main() {
	// .env is optional; real env vars win over it
	_ = godotenv.Load()

	level, err := logpkg.ParseLevel(os.Getenv("PUBSUB_LOG_LEVEL"))
	if err != nil {
		level = logpkg.InfoLevel
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(level),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)
	// Redirect standard library logs (used by grpc) to our logger
	logpkg.RedirectStdLog(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := clientcmd.NewRoot().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
