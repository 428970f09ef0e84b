package main

import (
	"log"

	"icebreaker-backend/internal/bootstrap"
	"icebreaker-backend/internal/shared/config"
	"icebreaker-backend/internal/shared/server"
	"icebreaker-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Init(cfg.LogLevel, cfg.LogFormat)
	defer telemetry.Sync()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{
		"addr":      addr,
		"env":       cfg.Env,
		"questions": app.Bank.Len(),
	})

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
