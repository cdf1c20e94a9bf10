// Package units
package units

import "fmt"

const factor = 1024

var prefixes = []string{"", "K", "M", "G", "T", "P"}

// FormatBytes scales n to the largest binary unit that keeps it below 1024,
// stopping at PB.
func FormatBytes(n uint64) string {
	value := float64(n)

	for i, prefix := range prefixes {
		if value < factor || i == len(prefixes)-1 {
			return fmt.Sprintf("%.2f%sB", value, prefix)
		}
		value /= factor
	}

	return ""
}

// FormatMHz renders a frequency the way the CPU section prints it.
func FormatMHz(mhz float64) string {
	return fmt.Sprintf("%.2fMhz", mhz)
}

func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
