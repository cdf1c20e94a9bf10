// Package memory
package memory

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"

	"sysinfo/internal/domain"
	"sysinfo/internal/logger"
)

type Collector struct {
	log     logger.Logger
	virtual func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	swap    func(ctx context.Context) (*mem.SwapMemoryStat, error)
}

type MemorySnapshot = domain.MemorySnapshot

func NewCollector(log logger.Logger) *Collector {
	return &Collector{
		log:     log,
		virtual: mem.VirtualMemoryWithContext,
		swap:    mem.SwapMemoryWithContext,
	}
}

func (c *Collector) Collect(ctx context.Context) (MemorySnapshot, error) {
	vm, err := c.virtual(ctx)
	if err != nil {
		c.log.Error("failed to read virtual memory", "error", err)
		return MemorySnapshot{}, fmt.Errorf("virtual memory: %w", err)
	}

	snap := MemorySnapshot{
		Virtual: domain.VirtualMemory{
			Total:     vm.Total,
			Available: vm.Available,
			Used:      vm.Used,
			Percent:   vm.UsedPercent,
		},
	}

	sw, err := c.swap(ctx)
	if err != nil {
		c.log.Warn("failed to read swap memory", "error", err)
		snap.SwapErr = fmt.Errorf("swap memory: %w", err)
		return snap, nil
	}

	snap.Swap = domain.SwapMemory{
		Total:   sw.Total,
		Free:    sw.Free,
		Used:    sw.Used,
		Percent: sw.UsedPercent,
	}

	return snap, nil
}
