package mountservice

import (
	"github.com/redjax/storbar/internal/utils/invariant"
)

// UsageSample is one successful capacity probe of a mount point.
type UsageSample struct {
	Total       uint64
	Free        uint64
	Used        uint64
	UsedPercent float64

	// Magic is the kernel filesystem type magic, when the probe backend can
	// report one. HasMagic is false on the portable backend.
	Magic    int64
	HasMagic bool
}

// newSample derives used bytes and used percent from a raw total/free pair.
// Percent is guaranteed to land in [0,100]; a free count above total can only
// come from a broken measurement and is clamped after the invariant fires.
// A zero total marks the sample non-reportable and skips the arithmetic.
func newSample(total, free uint64) UsageSample {
	s := UsageSample{Total: total, Free: free}
	if total == 0 {
		return s
	}

	invariant.Checkf(free <= total, "free bytes %d exceed total %d", free, total)
	if free > total {
		free = total
	}

	s.Used = total - free
	s.UsedPercent = float64(s.Used) / float64(total) * 100
	return s
}
