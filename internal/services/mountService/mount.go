package mountservice

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/redjax/storbar/internal/utils/invariant"
)

// MountRecord is one parsed line of the mount table. Records live for a
// single report cycle and are consumed immediately.
type MountRecord struct {
	Device     string
	MountPoint string
	FSType     string
}

// Mount is a retained, probed mount: the record plus its live usage sample.
type Mount struct {
	Device     string
	MountPoint string
	FSType     string
	Usage      UsageSample
}

// ReadTable reads the mount table at path, bounded to maxSize bytes. Reads
// past the bound arrive truncated; ParseTable treats a cut-off final line as
// end of table. An unreadable or empty table fails the whole cycle.
func ReadTable(path string, maxSize int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mount table %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSize))
	if err != nil {
		return nil, fmt.Errorf("reading mount table %s: %w", path, err)
	}

	// The kernel always lists at least the root filesystem.
	invariant.Checkf(len(data) > 0, "mount table %s read as zero bytes", path)
	if len(data) == 0 {
		return nil, fmt.Errorf("mount table %s is empty", path)
	}

	return data, nil
}

// ParseTable splits raw mount table bytes into records. Fields are separated
// by single spaces: device, mount point, filesystem type; options and
// dump/pass numbers are ignored. A line with fewer than two fields ends the
// table (assumed truncated, not corrupt); a line with a device and mount
// point but no type skips just that record. Mount points containing literal
// spaces corrupt field alignment and are not defended against.
func ParseTable(data []byte) []MountRecord {
	var records []MountRecord

	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}

		fields := strings.Split(line, " ")
		if len(fields) < 2 {
			break
		}
		if len(fields) < 3 {
			continue
		}

		records = append(records, MountRecord{
			Device:     fields[0],
			MountPoint: fields[1],
			FSType:     fields[2],
		})
	}

	return records
}

// Collect turns parsed records into probed mounts, dropping everything a
// usage report should not show: pseudo filesystems (by type name before the
// probe, by magic number after), mounts whose probe fails, and mounts
// reporting zero total size. Probes run sequentially; a record-local failure
// never aborts the cycle.
func Collect(records []MountRecord, prober Prober) []Mount {
	var mounts []Mount

	for _, rec := range records {
		if PseudoName(rec.FSType) {
			logrus.WithField("mount", rec.MountPoint).Trace("pseudo filesystem type, skipping")
			continue
		}

		sample, err := prober.Probe(rec.MountPoint)
		if err != nil {
			logrus.WithError(err).WithField("mount", rec.MountPoint).Warn("probe failed, skipping mount")
			continue
		}

		if sample.HasMagic && PseudoMagic(sample.Magic) {
			logrus.WithField("mount", rec.MountPoint).Trace("pseudo filesystem magic, skipping")
			continue
		}

		// Synthetic mounts commonly report zero size; nothing to chart.
		if sample.Total == 0 {
			logrus.WithField("mount", rec.MountPoint).Debug("zero-size mount, skipping")
			continue
		}

		mounts = append(mounts, Mount{
			Device:     rec.Device,
			MountPoint: rec.MountPoint,
			FSType:     rec.FSType,
			Usage:      sample,
		})
	}

	return mounts
}
