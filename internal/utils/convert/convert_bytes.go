package utils

import (
	"fmt"
)

// BytesToGiB converts a raw byte count to binary gibibytes (2^30 bytes).
// The tooltip and table output always report sizes in GiB.
func BytesToGiB(bytes uint64) float64 {
	return float64(bytes) / (1 << 30)
}

func BytesToHumanReadable(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	// Units: KiB, MiB, GiB, TiB, PiB, EiB, ZiB, YiB
	units := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}

	if exp >= len(units) {
		return fmt.Sprintf("%.1f B", float64(bytes))
	}

	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}
