// Package system
package system

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/cpu"

	"sysinfo/internal/domain"
	"sysinfo/internal/logger"
)

const unknown = "unknown"

func NewCollector(log logger.Logger) *Collector {
	return &Collector{
		log:     log,
		uname:   readUname,
		cpuInfo: cpu.InfoWithContext,
		product: func() (*ghw.ProductInfo, error) {
			return ghw.Product(ghw.WithDisableWarnings())
		},
	}
}

func (c *Collector) Collect(ctx context.Context) (SystemIdentity, error) {
	u, err := c.uname(ctx)
	if err != nil {
		return SystemIdentity{}, fmt.Errorf("uname: %w", err)
	}

	identity := SystemIdentity{
		System:    u.Sysname,
		Node:      u.Nodename,
		Release:   u.Release,
		Version:   u.Version,
		Machine:   u.Machine,
		Processor: c.processor(ctx, u.Machine),
	}

	identity.Vendor, identity.Product, identity.HardwareErr = c.hardware()

	return identity, nil
}

func (c *Collector) processor(ctx context.Context, fallback string) string {
	infos, err := c.cpuInfo(ctx)
	if err != nil {
		c.log.Debug("failed to read cpu info", "error", err)
		return fallback
	}

	for _, info := range infos {
		if model := strings.TrimSpace(info.ModelName); model != "" {
			return model
		}
	}

	return fallback
}

func (c *Collector) hardware() (string, string, error) {
	p, err := c.product()
	if err != nil {
		c.log.Debug("failed to read product info", "error", err)
		return "", "", fmt.Errorf("hardware product: %w", err)
	}

	vendor := known(p.Vendor)
	name := known(p.Name)
	if vendor == "" && name == "" {
		return "", "", fmt.Errorf("hardware product: %w", domain.ErrUnavailable)
	}

	return vendor, name, nil
}

func known(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, unknown) {
		return ""
	}
	return s
}
