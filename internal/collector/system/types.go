package system

import (
	"context"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/cpu"

	"sysinfo/internal/domain"
	"sysinfo/internal/logger"
)

type utsname struct {
	Sysname  string
	Nodename string
	Release  string
	Version  string
	Machine  string
}

type Collector struct {
	log     logger.Logger
	uname   func(ctx context.Context) (utsname, error)
	cpuInfo func(ctx context.Context) ([]cpu.InfoStat, error)
	product func() (*ghw.ProductInfo, error)
}

type SystemIdentity = domain.SystemIdentity
