package network

import (
	"context"

	psnet "github.com/shirou/gopsutil/v3/net"

	"sysinfo/internal/domain"
	"sysinfo/internal/logger"
)

type Collector struct {
	log        logger.Logger
	interfaces func(ctx context.Context) (psnet.InterfaceStatList, error)
	ioCounters func(ctx context.Context, perNIC bool) ([]psnet.IOCountersStat, error)
}

type NetworkSnapshot = domain.NetworkSnapshot
type NetworkInterface = domain.NetworkInterface
type InterfaceAddress = domain.InterfaceAddress
