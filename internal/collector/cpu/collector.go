// Package cpu
package cpu

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"

	"sysinfo/internal/domain"
	"sysinfo/internal/logger"
)

func NewCollector(log logger.Logger, interval time.Duration) *Collector {
	return &Collector{
		log:      log,
		interval: interval,
		sysRoot:  "/sys",
		counts:   cpu.CountsWithContext,
		times:    cpu.TimesWithContext,
		info:     cpu.InfoWithContext,
		sleep:    sleepContext,
	}
}

func (c *Collector) Collect(ctx context.Context) (CPUSnapshot, error) {
	var snap CPUSnapshot

	snap.PhysicalCores, snap.PhysicalErr = c.count(ctx, false)
	snap.LogicalCores, snap.LogicalErr = c.count(ctx, true)
	snap.Frequency, snap.FrequencyErr = c.frequency(ctx)
	snap.PerCore, snap.Total, snap.UsageErr = c.usage(ctx)

	if snap.UsageErr != nil {
		c.log.Warn("failed to sample cpu usage", "error", snap.UsageErr)
	}

	return snap, nil
}

func (c *Collector) count(ctx context.Context, logical bool) (int, error) {
	n, err := c.counts(ctx, logical)
	if err != nil {
		c.log.Debug("failed to count cpus", "logical", logical, "error", err)
		return 0, fmt.Errorf("cpu count: %w", err)
	}

	if n <= 0 {
		return 0, fmt.Errorf("cpu count: %w", domain.ErrUnavailable)
	}

	return n, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
