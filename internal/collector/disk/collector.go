// Package disk
package disk

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"

	"sysinfo/internal/domain"
	"sysinfo/internal/logger"
)

func NewCollector(log logger.Logger) *Collector {
	return &Collector{
		log:        log,
		partitions: disk.PartitionsWithContext,
		usage:      disk.UsageWithContext,
		ioCounters: disk.IOCountersWithContext,
	}
}

func (c *Collector) Collect(ctx context.Context) (DiskSnapshot, error) {
	parts, err := c.partitions(ctx, false)
	if err != nil {
		c.log.Error("failed to list partitions", "error", err)
		return DiskSnapshot{}, fmt.Errorf("partitions: %w", err)
	}

	var snap DiskSnapshot
	for _, p := range parts {
		snap.Partitions = append(snap.Partitions, c.partitionUsage(ctx, p))
	}

	snap.IO, snap.IOErr = c.ioTotals(ctx)

	return snap, nil
}

func (c *Collector) partitionUsage(ctx context.Context, p disk.PartitionStat) PartitionUsage {
	pu := PartitionUsage{
		Device:     p.Device,
		Mountpoint: p.Mountpoint,
		FSType:     p.Fstype,
	}

	u, err := c.usage(ctx, p.Mountpoint)
	if err != nil {
		c.log.Warn("failed to read partition usage", "mountpoint", p.Mountpoint, "error", err)
		pu.Err = fmt.Errorf("usage of %s: %w", p.Mountpoint, err)
		return pu
	}

	pu.Total = u.Total
	pu.Used = u.Used
	pu.Free = u.Free
	pu.Percent = u.UsedPercent

	return pu
}

func (c *Collector) ioTotals(ctx context.Context) (domain.IOTotals, error) {
	counters, err := c.ioCounters(ctx)
	if err != nil {
		c.log.Warn("failed to read disk io counters", "error", err)
		return domain.IOTotals{}, fmt.Errorf("disk io counters: %w", err)
	}

	if len(counters) == 0 {
		return domain.IOTotals{}, fmt.Errorf("disk io counters: %w", domain.ErrUnavailable)
	}

	var totals domain.IOTotals
	for name, stat := range counters {
		if skipDevice(name) {
			continue
		}
		totals.ReadBytes += stat.ReadBytes
		totals.WriteBytes += stat.WriteBytes
	}

	return totals, nil
}
