package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"messagely/internal/cli"
	"messagely/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)
}
