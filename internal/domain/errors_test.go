package domain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"permission", fmt.Errorf("usage of /root: %w", os.ErrPermission), "permission denied"},
		{"unavailable", fmt.Errorf("cpu frequency: %w", ErrUnavailable), "not available on this system"},
		{"cancelled", fmt.Errorf("cpu sample: %w", context.Canceled), "collection interrupted"},
		{"other", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.err))
		})
	}
}

func TestReportFail(t *testing.T) {
	var r Report
	err := errors.New("no counters")

	r.Fail(SectionDisk, err)

	assert.Equal(t, err, r.Err(SectionDisk))
	assert.NoError(t, r.Err(SectionNetwork))
}

func TestSectionsOrder(t *testing.T) {
	names := make([]string, 0, len(Sections))
	for _, s := range Sections {
		names = append(names, s.String())
	}

	assert.Equal(t, []string{"identity", "boot", "cpu", "memory", "disk", "network"}, names)
}
