package main

import (
	"context"
	"log"
	"os"

	"lifespan-backend/internal/bootstrap"
	"lifespan-backend/internal/shared/config"
	"lifespan-backend/internal/shared/server"
	"lifespan-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Configure(cfg.LogLevel, cfg.LogFormat)
	defer telemetry.Sync()

	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		log.Printf("bootstrap failed: %v", err)
		os.Exit(1)
	}
	defer app.Close()

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{"addr": addr, "env": cfg.Env})

	if err := app.Router.Run(addr); err != nil {
		telemetry.Error("server.stopped", map[string]any{"err": err})
		os.Exit(1)
	}
}
