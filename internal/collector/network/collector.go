// Package network
package network

import (
	"context"
	"fmt"

	psnet "github.com/shirou/gopsutil/v3/net"

	"sysinfo/internal/domain"
	"sysinfo/internal/logger"
)

func NewCollector(log logger.Logger) *Collector {
	return &Collector{
		log:        log,
		interfaces: psnet.InterfacesWithContext,
		ioCounters: psnet.IOCountersWithContext,
	}
}

func (c *Collector) Collect(ctx context.Context) (NetworkSnapshot, error) {
	ifaces, err := c.interfaces(ctx)
	if err != nil {
		c.log.Error("failed to list network interfaces", "error", err)
		return NetworkSnapshot{}, fmt.Errorf("interfaces: %w", err)
	}

	var snap NetworkSnapshot
	for _, iface := range ifaces {
		snap.Interfaces = append(snap.Interfaces, NetworkInterface{
			Name:      iface.Name,
			Addresses: c.addresses(iface),
		})
	}

	snap.IO, snap.IOErr = c.ioTotals(ctx)

	return snap, nil
}

func (c *Collector) ioTotals(ctx context.Context) (domain.TrafficTotals, error) {
	counters, err := c.ioCounters(ctx, false)
	if err != nil {
		c.log.Warn("failed to read network io counters", "error", err)
		return domain.TrafficTotals{}, fmt.Errorf("network io counters: %w", err)
	}

	if len(counters) == 0 {
		return domain.TrafficTotals{}, fmt.Errorf("network io counters: %w", domain.ErrUnavailable)
	}

	return domain.TrafficTotals{
		BytesSent: counters[0].BytesSent,
		BytesRecv: counters[0].BytesRecv,
	}, nil
}
