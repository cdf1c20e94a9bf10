package disk

import (
	"context"

	"github.com/shirou/gopsutil/v3/disk"

	"sysinfo/internal/domain"
	"sysinfo/internal/logger"
)

type Collector struct {
	log        logger.Logger
	partitions func(ctx context.Context, all bool) ([]disk.PartitionStat, error)
	usage      func(ctx context.Context, path string) (*disk.UsageStat, error)
	ioCounters func(ctx context.Context, names ...string) (map[string]disk.IOCountersStat, error)
}

type DiskSnapshot = domain.DiskSnapshot
type PartitionUsage = domain.PartitionUsage
