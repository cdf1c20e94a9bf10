// Package report
package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"sysinfo/internal/domain"
	"sysinfo/pkg/units"
)

const (
	headerWidth    = 40
	subheaderWidth = 20
)

type sectionHeader struct {
	title string
	fill  string
}

var headers = map[domain.Section]sectionHeader{
	domain.SectionIdentity: {"System Information", "="},
	domain.SectionBoot:     {"Boot Time", "="},
	domain.SectionCPU:      {"CPU Info", "-"},
	domain.SectionMemory:   {"Memory Information", "-"},
	domain.SectionDisk:     {"Disk Information", "-"},
	domain.SectionNetwork:  {"Network Information", "-"},
}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Bytes renders the whole report into memory so every destination gets the
// same content.
func (rd *Renderer) Bytes(r domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := rd.Render(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (rd *Renderer) Render(w io.Writer, r domain.Report) error {
	p := &printer{w: w}

	for _, section := range domain.Sections {
		h := headers[section]
		p.header(h.fill, headerWidth, h.title)

		if err := r.Err(section); err != nil {
			p.line("%s unavailable: %s", h.title, domain.Describe(err))
			continue
		}

		switch section {
		case domain.SectionIdentity:
			renderIdentity(p, r.Identity)
		case domain.SectionBoot:
			renderBoot(p, r.Boot)
		case domain.SectionCPU:
			renderCPU(p, r.CPU)
		case domain.SectionMemory:
			renderMemory(p, r.Memory)
		case domain.SectionDisk:
			renderDisk(p, r.Disk)
		case domain.SectionNetwork:
			renderNetwork(p, r.Network)
		}
	}

	return p.err
}

func renderIdentity(p *printer, id domain.SystemIdentity) {
	p.line("System: %s", id.System)
	p.line("Node Name: %s", id.Node)
	p.line("Release: %s", id.Release)
	p.line("Version: %s", id.Version)
	p.line("Machine: %s", id.Machine)
	p.line("Processor: %s", id.Processor)

	if id.HardwareErr != nil {
		p.unavailable("Hardware", id.HardwareErr)
		return
	}
	p.line("Hardware Vendor: %s", id.Vendor)
	p.line("Hardware Model: %s", id.Product)
}

func renderBoot(p *printer, b domain.BootInfo) {
	t := b.BootTime
	p.line("Boot Time: %d/%d/%d  %d:%d:%d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}

func renderCPU(p *printer, c domain.CPUSnapshot) {
	if c.PhysicalErr != nil {
		p.unavailable("Physical Cores", c.PhysicalErr)
	} else {
		p.line("Physical Cores: %d", c.PhysicalCores)
	}

	if c.LogicalErr != nil {
		p.unavailable("Total Cores", c.LogicalErr)
	} else {
		p.line("Total Cores: %d", c.LogicalCores)
	}

	if c.FrequencyErr != nil {
		p.unavailable("Frequency", c.FrequencyErr)
	} else {
		p.line("Max Frequency: %s", units.FormatMHz(c.Frequency.MaxMHz))
		p.line("Min Frequency: %s", units.FormatMHz(c.Frequency.MinMHz))
		p.line("Current Frequency: %s", units.FormatMHz(c.Frequency.CurrentMHz))
	}

	if c.UsageErr != nil {
		p.unavailable("CPU Usage", c.UsageErr)
		return
	}
	p.line("CPU Usage Per Core:")
	for i, pct := range c.PerCore {
		p.line("Core %d: %s", i, units.FormatPercent(pct))
	}
	p.line("Total CPU Usage: %s", units.FormatPercent(c.Total))
}

func renderMemory(p *printer, m domain.MemorySnapshot) {
	p.line("Total: %s", units.FormatBytes(m.Virtual.Total))
	p.line("Available: %s", units.FormatBytes(m.Virtual.Available))
	p.line("Used: %s", units.FormatBytes(m.Virtual.Used))
	p.line("Percentage: %s", units.FormatPercent(m.Virtual.Percent))

	p.header("=", subheaderWidth, "SWAP")
	if m.SwapErr != nil {
		p.unavailable("Swap", m.SwapErr)
		return
	}
	p.line("Total: %s", units.FormatBytes(m.Swap.Total))
	p.line("Free: %s", units.FormatBytes(m.Swap.Free))
	p.line("Used: %s", units.FormatBytes(m.Swap.Used))
	p.line("Percentage: %s", units.FormatPercent(m.Swap.Percent))
}

func renderDisk(p *printer, d domain.DiskSnapshot) {
	p.line("Partitions and Usage:")
	for _, part := range d.Partitions {
		p.line("=== Device: %s ===", part.Device)
		p.line("  Mountpoint: %s", part.Mountpoint)
		p.line("  File system type: %s", part.FSType)

		if part.Err != nil {
			p.unavailable("  Usage", part.Err)
			continue
		}
		p.line("  Total Size: %s", units.FormatBytes(part.Total))
		p.line("  Used: %s", units.FormatBytes(part.Used))
		p.line("  Free: %s", units.FormatBytes(part.Free))
		p.line("  Percentage: %s", units.FormatPercent(part.Percent))
	}

	if d.IOErr != nil {
		p.unavailable("Disk IO", d.IOErr)
		return
	}
	p.line("Total read: %s", units.FormatBytes(d.IO.ReadBytes))
	p.line("Total write: %s", units.FormatBytes(d.IO.WriteBytes))
}

func renderNetwork(p *printer, n domain.NetworkSnapshot) {
	for _, iface := range n.Interfaces {
		p.line("=== Interface: %s ===", iface.Name)

		for _, a := range iface.Addresses {
			switch a.Family {
			case domain.FamilyIPv4:
				p.line("  IP Address: %s", a.Address)
				p.line("  Netmask: %s", a.Netmask)
				if a.Broadcast != "" {
					p.line("  Broadcast IP: %s", a.Broadcast)
				}
			case domain.FamilyIPv6:
				p.line("  IPv6 Address: %s", a.Address)
				p.line("  IPv6 Netmask: %s", a.Netmask)
			case domain.FamilyLink:
				p.line("  MAC Address: %s", a.Address)
				if a.Broadcast != "" {
					p.line("  Broadcast MAC: %s", a.Broadcast)
				}
			}
		}
	}

	if n.IOErr != nil {
		p.unavailable("Network IO", n.IOErr)
		return
	}
	p.line("Total Bytes Sent: %s", units.FormatBytes(n.IO.BytesSent))
	p.line("Total Bytes Received: %s", units.FormatBytes(n.IO.BytesRecv))
}

// printer keeps the first write error and turns later writes into no-ops.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) header(fill string, width int, title string) {
	bar := strings.Repeat(fill, width)
	p.line("%s %s %s", bar, title, bar)
}

func (p *printer) unavailable(label string, err error) {
	p.line("%s: unavailable (%s)", label, domain.Describe(err))
}
