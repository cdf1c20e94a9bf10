package cpu

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
)

// usage samples per-core and aggregate busy percentages over one interval.
func (c *Collector) usage(ctx context.Context) ([]float64, float64, error) {
	prevCores, prevTotal, err := c.readTimes(ctx)
	if err != nil {
		return nil, 0, err
	}

	if err := c.sleep(ctx, c.interval); err != nil {
		return nil, 0, fmt.Errorf("cpu sample: %w", err)
	}

	currCores, currTotal, err := c.readTimes(ctx)
	if err != nil {
		return nil, 0, err
	}

	n := min(len(prevCores), len(currCores))
	perCore := make([]float64, n)
	for i := 0; i < n; i++ {
		perCore[i] = busyPercent(prevCores[i], currCores[i])
	}

	return perCore, busyPercent(prevTotal, currTotal), nil
}

func (c *Collector) readTimes(ctx context.Context) ([]cpu.TimesStat, cpu.TimesStat, error) {
	perCore, err := c.times(ctx, true)
	if err != nil {
		return nil, cpu.TimesStat{}, fmt.Errorf("cpu times: %w", err)
	}

	total, err := c.times(ctx, false)
	if err != nil {
		return nil, cpu.TimesStat{}, fmt.Errorf("cpu times: %w", err)
	}

	if len(total) == 0 {
		return nil, cpu.TimesStat{}, fmt.Errorf("cpu times: empty aggregate")
	}

	return perCore, total[0], nil
}

func busyPercent(prev, curr cpu.TimesStat) float64 {
	deltaTotal := sumTimes(curr) - sumTimes(prev)
	deltaIdle := idleTimes(curr) - idleTimes(prev)

	if deltaTotal <= 0 {
		return 0
	}

	usage := (deltaTotal - deltaIdle) / deltaTotal * 100
	switch {
	case usage < 0:
		return 0
	case usage > 100:
		return 100
	}

	return usage
}

func sumTimes(t cpu.TimesStat) float64 {
	return t.User + t.Nice + t.System + t.Idle +
		t.Iowait + t.Irq + t.Softirq + t.Steal
}

func idleTimes(t cpu.TimesStat) float64 {
	return t.Idle + t.Iowait
}
