//go:build linux

package mountservice

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// StatfsProber queries capacity through statfs(2). It is the daemon backend
// on Linux: cheap, and the only backend that reports the filesystem magic
// the filter needs.
type StatfsProber struct{}

func (StatfsProber) Probe(mountPoint string) (UsageSample, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(mountPoint, &st); err != nil {
		return UsageSample{}, fmt.Errorf("statfs %s: %w", mountPoint, err)
	}

	bsize := uint64(st.Bsize)
	sample := newSample(st.Blocks*bsize, st.Bfree*bsize)
	sample.Magic = int64(st.Type)
	sample.HasMagic = true

	return sample, nil
}

// DefaultProber returns the backend the run command uses on this platform.
func DefaultProber() Prober {
	return StatfsProber{}
}
