package mountservice

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// PortableProber queries capacity through gopsutil. It works everywhere but
// cannot report a filesystem magic, so filtering stays name-only with it.
type PortableProber struct{}

func (PortableProber) Probe(mountPoint string) (UsageSample, error) {
	usage, err := disk.Usage(mountPoint)
	if err != nil {
		return UsageSample{}, fmt.Errorf("disk usage %s: %w", mountPoint, err)
	}

	// Used is derived as total-free here, not taken from gopsutil's Used;
	// on ext-family filesystems the two differ by the reserved blocks.
	return newSample(usage.Total, usage.Free), nil
}

// ListMounts enumerates mounted filesystems with live usage via gopsutil.
// The disks and watch commands use this on every platform. With all false,
// pseudo filesystem types and zero-size mounts are dropped the same way the
// report pipeline drops them; probe failures always skip just that mount.
func ListMounts(all bool) ([]Mount, error) {
	partitions, err := disk.Partitions(true)
	if err != nil {
		return nil, fmt.Errorf("listing partitions: %w", err)
	}

	prober := PortableProber{}

	var mounts []Mount
	for _, part := range partitions {
		if !all && PseudoName(part.Fstype) {
			continue
		}

		sample, err := prober.Probe(part.Mountpoint)
		if err != nil {
			continue
		}
		if !all && sample.Total == 0 {
			continue
		}

		mounts = append(mounts, Mount{
			Device:     part.Device,
			MountPoint: part.Mountpoint,
			FSType:     part.Fstype,
			Usage:      sample,
		})
	}

	return mounts, nil
}
