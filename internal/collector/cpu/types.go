package cpu

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"

	"sysinfo/internal/domain"
	"sysinfo/internal/logger"
)

type Collector struct {
	log      logger.Logger
	interval time.Duration
	sysRoot  string

	counts func(ctx context.Context, logical bool) (int, error)
	times  func(ctx context.Context, perCPU bool) ([]cpu.TimesStat, error)
	info   func(ctx context.Context) ([]cpu.InfoStat, error)
	sleep  func(ctx context.Context, d time.Duration) error
}

type CPUSnapshot = domain.CPUSnapshot
type CPUFrequency = domain.CPUFrequency
