package disk

import (
	"regexp"
	"strings"
)

var (
	nvmePartition = regexp.MustCompile(`^nvme\d+n\d+p\d+$`)
	sdPartition   = regexp.MustCompile(`^(sd|vd|xvd|hd)[a-z]+\d+$`)
	mmcPartition  = regexp.MustCompile(`^mmcblk\d+p\d+$`)
)

func isPartition(name string) bool {
	return nvmePartition.MatchString(name) ||
		sdPartition.MatchString(name) ||
		mmcPartition.MatchString(name)
}

// skipDevice drops partitions and virtual devices whose IO is already counted
// on the backing disk.
func skipDevice(name string) bool {
	if strings.HasPrefix(name, "loop") ||
		strings.HasPrefix(name, "ram") ||
		strings.HasPrefix(name, "dm-") {
		return true
	}

	return isPartition(name)
}
