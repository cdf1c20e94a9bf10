package cpu

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"sysinfo/internal/domain"
)

func (c *Collector) frequency(ctx context.Context) (CPUFrequency, error) {
	base := filepath.Join(c.sysRoot, "devices", "system", "cpu", "cpu0", "cpufreq")

	cur, err := readKHz(filepath.Join(base, "scaling_cur_freq"))
	if err == nil {
		minKHz, _ := readKHz(filepath.Join(base, "scaling_min_freq"))
		maxKHz, _ := readKHz(filepath.Join(base, "scaling_max_freq"))

		return CPUFrequency{
			CurrentMHz: cur / 1e3,
			MinMHz:     minKHz / 1e3,
			MaxMHz:     maxKHz / 1e3,
		}, nil
	}
	c.log.Debug("cpufreq not readable, falling back to cpu info", "path", base, "error", err)

	infos, err := c.info(ctx)
	if err != nil {
		return CPUFrequency{}, fmt.Errorf("cpu frequency: %w", err)
	}

	for _, info := range infos {
		if info.Mhz > 0 {
			return CPUFrequency{CurrentMHz: info.Mhz}, nil
		}
	}

	return CPUFrequency{}, fmt.Errorf("cpu frequency: %w", domain.ErrUnavailable)
}

func readKHz(path string) (float64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	return strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
}
