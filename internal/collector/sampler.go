// Package collector
package collector

import (
	"context"
	"time"

	"sysinfo/internal/collector/boot"
	"sysinfo/internal/collector/cpu"
	"sysinfo/internal/collector/disk"
	"sysinfo/internal/collector/memory"
	"sysinfo/internal/collector/network"
	"sysinfo/internal/collector/system"
	"sysinfo/internal/config"
	"sysinfo/internal/domain"
	"sysinfo/internal/logger"
)

type Collector[T any] interface {
	Collect(ctx context.Context) (T, error)
}

type Sampler struct {
	system  Collector[domain.SystemIdentity]
	boot    Collector[domain.BootInfo]
	cpu     Collector[domain.CPUSnapshot]
	memory  Collector[domain.MemorySnapshot]
	disk    Collector[domain.DiskSnapshot]
	network Collector[domain.NetworkSnapshot]
	log     logger.Logger
}

func NewSampler(cfg *config.Config, log logger.Logger) *Sampler {
	return &Sampler{
		system:  system.NewCollector(log),
		boot:    boot.NewCollector(log),
		cpu:     cpu.NewCollector(log, cfg.CPUSampleInterval),
		memory:  memory.NewCollector(log),
		disk:    disk.NewCollector(log),
		network: network.NewCollector(log),
		log:     log,
	}
}

// Collect queries every group in rendering order. A failing group is recorded
// on the report and never stops the groups after it.
func (s *Sampler) Collect(ctx context.Context) domain.Report {
	r := domain.NewReport()

	collect(ctx, s, &r, domain.SectionIdentity, s.system, &r.Identity)
	collect(ctx, s, &r, domain.SectionBoot, s.boot, &r.Boot)
	collect(ctx, s, &r, domain.SectionCPU, s.cpu, &r.CPU)
	collect(ctx, s, &r, domain.SectionMemory, s.memory, &r.Memory)
	collect(ctx, s, &r, domain.SectionDisk, s.disk, &r.Disk)
	collect(ctx, s, &r, domain.SectionNetwork, s.network, &r.Network)

	return r
}

func collect[T any](ctx context.Context, s *Sampler, r *domain.Report, section domain.Section, c Collector[T], dst *T) {
	start := time.Now()

	val, err := c.Collect(ctx)
	if err != nil {
		s.log.Error("collector", "name", section.String(), "error", err)
		r.Fail(section, err)
		return
	}

	*dst = val
	s.log.Debug("collector", "name", section.String(), "took", time.Since(start))
}
