package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	const (
		kib = uint64(1024)
		pib = kib * kib * kib * kib * kib
	)

	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0.00B"},
		{1, "1.00B"},
		{1023, "1023.00B"},
		{kib, "1.00KB"},
		{1536, "1.50KB"},
		{kib * kib, "1.00MB"},
		{5 * kib * kib * kib, "5.00GB"},
		{3 * kib * kib * kib * kib / 2, "1.50TB"},
		{pib, "1.00PB"},
		{2048 * pib, "2048.00PB"},
		{math.MaxUint64, "16384.00PB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.in))
		})
	}
}

func TestFormatMHz(t *testing.T) {
	assert.Equal(t, "2400.00Mhz", FormatMHz(2400))
	assert.Equal(t, "0.00Mhz", FormatMHz(0))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "42.5%", FormatPercent(42.5))
	assert.Equal(t, "0.0%", FormatPercent(0))
}
