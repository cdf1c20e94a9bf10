package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sysinfo/internal/collector"
	"sysinfo/internal/config"
	"sysinfo/internal/logger"
	"sysinfo/internal/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.New(cfg)

	if err := cfg.Validate(); err != nil {
		log.Warn("invalid configuration, falling back to defaults", "error", err)
		cfg = config.Default()
		log = logger.New(cfg)
	}

	sampler := collector.NewSampler(cfg, log)
	publisher := report.NewPublisher(cfg, os.Stdout, log)

	start := time.Now()
	r := sampler.Collect(ctx)

	log.Debug("metrics collected",
		"run_id", r.ID.String(),
		"took", time.Since(start),
		"failed_sections", len(r.Errors),
	)

	publisher.Publish(r)
}
