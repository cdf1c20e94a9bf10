package domain

import (
	"errors"
	"time"
)

// ErrUnavailable marks a metric the platform does not expose.
var ErrUnavailable = errors.New("metric unavailable")

type SystemIdentity struct {
	System    string `json:"system"`
	Node      string `json:"node"`
	Release   string `json:"release"`
	Version   string `json:"version"`
	Machine   string `json:"machine"`
	Processor string `json:"processor"`

	Vendor      string `json:"vendor"`
	Product     string `json:"product"`
	HardwareErr error  `json:"-"`
}

type BootInfo struct {
	BootTime time.Time `json:"boot_time"`
}

type CPUFrequency struct {
	CurrentMHz float64 `json:"current_mhz"`
	MinMHz     float64 `json:"min_mhz"`
	MaxMHz     float64 `json:"max_mhz"`
}

type CPUSnapshot struct {
	PhysicalCores int   `json:"physical_cores"`
	PhysicalErr   error `json:"-"`
	LogicalCores  int   `json:"logical_cores"`
	LogicalErr    error `json:"-"`

	Frequency    CPUFrequency `json:"frequency"`
	FrequencyErr error        `json:"-"`

	PerCore  []float64 `json:"per_core"`
	Total    float64   `json:"total"`
	UsageErr error     `json:"-"`
}

type VirtualMemory struct {
	Total     uint64  `json:"total"`
	Available uint64  `json:"available"`
	Used      uint64  `json:"used"`
	Percent   float64 `json:"percent"`
}

type SwapMemory struct {
	Total   uint64  `json:"total"`
	Free    uint64  `json:"free"`
	Used    uint64  `json:"used"`
	Percent float64 `json:"percent"`
}

type MemorySnapshot struct {
	Virtual VirtualMemory `json:"virtual"`
	Swap    SwapMemory    `json:"swap"`
	SwapErr error         `json:"-"`
}

type PartitionUsage struct {
	Device     string  `json:"device"`
	Mountpoint string  `json:"mountpoint"`
	FSType     string  `json:"fstype"`
	Total      uint64  `json:"total"`
	Used       uint64  `json:"used"`
	Free       uint64  `json:"free"`
	Percent    float64 `json:"percent"`
	Err        error   `json:"-"`
}

type IOTotals struct {
	ReadBytes  uint64 `json:"read_bytes"`
	WriteBytes uint64 `json:"write_bytes"`
}

type DiskSnapshot struct {
	Partitions []PartitionUsage `json:"partitions"`
	IO         IOTotals         `json:"io"`
	IOErr      error            `json:"-"`
}

type AddressFamily int

const (
	FamilyIPv4 AddressFamily = iota
	FamilyIPv6
	FamilyLink
)

func (f AddressFamily) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	case FamilyLink:
		return "link"
	default:
		return "unknown"
	}
}

type InterfaceAddress struct {
	Family    AddressFamily `json:"family"`
	Address   string        `json:"address"`
	Netmask   string        `json:"netmask"`
	Broadcast string        `json:"broadcast"`
}

type NetworkInterface struct {
	Name      string             `json:"name"`
	Addresses []InterfaceAddress `json:"addresses"`
}

type TrafficTotals struct {
	BytesSent uint64 `json:"bytes_sent"`
	BytesRecv uint64 `json:"bytes_recv"`
}

type NetworkSnapshot struct {
	Interfaces []NetworkInterface `json:"interfaces"`
	IO         TrafficTotals      `json:"io"`
	IOErr      error              `json:"-"`
}
