// Package boot
package boot

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/host"

	"sysinfo/internal/domain"
	"sysinfo/internal/logger"
)

type Collector struct {
	log      logger.Logger
	bootTime func(ctx context.Context) (uint64, error)
}

type BootInfo = domain.BootInfo

func NewCollector(log logger.Logger) *Collector {
	return &Collector{log: log, bootTime: host.BootTimeWithContext}
}

func (c *Collector) Collect(ctx context.Context) (BootInfo, error) {
	secs, err := c.bootTime(ctx)
	if err != nil {
		c.log.Warn("failed to read boot time", "error", err)
		return BootInfo{}, fmt.Errorf("boot time: %w", err)
	}

	if secs == 0 {
		return BootInfo{}, fmt.Errorf("boot time: %w", domain.ErrUnavailable)
	}

	return BootInfo{BootTime: time.Unix(int64(secs), 0)}, nil
}
