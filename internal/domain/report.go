package domain

import (
	"time"

	"github.com/google/uuid"
)

type Section int

const (
	SectionIdentity Section = iota
	SectionBoot
	SectionCPU
	SectionMemory
	SectionDisk
	SectionNetwork
)

// Sections lists every section in rendering order.
var Sections = []Section{
	SectionIdentity,
	SectionBoot,
	SectionCPU,
	SectionMemory,
	SectionDisk,
	SectionNetwork,
}

func (s Section) String() string {
	switch s {
	case SectionIdentity:
		return "identity"
	case SectionBoot:
		return "boot"
	case SectionCPU:
		return "cpu"
	case SectionMemory:
		return "memory"
	case SectionDisk:
		return "disk"
	case SectionNetwork:
		return "network"
	default:
		return "unknown"
	}
}

type Report struct {
	ID          uuid.UUID `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	Identity SystemIdentity  `json:"identity"`
	Boot     BootInfo        `json:"boot"`
	CPU      CPUSnapshot     `json:"cpu"`
	Memory   MemorySnapshot  `json:"memory"`
	Disk     DiskSnapshot    `json:"disk"`
	Network  NetworkSnapshot `json:"network"`

	Errors map[Section]error `json:"-"`
}

func NewReport() Report {
	return Report{
		ID:          uuid.New(),
		GeneratedAt: time.Now(),
		Errors:      make(map[Section]error),
	}
}

// Fail records a group-level failure for the section.
func (r *Report) Fail(s Section, err error) {
	if r.Errors == nil {
		r.Errors = make(map[Section]error)
	}
	r.Errors[s] = err
}

func (r Report) Err(s Section) error {
	return r.Errors[s]
}
