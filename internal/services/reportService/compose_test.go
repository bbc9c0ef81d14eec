package reportservice

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	mountservice "github.com/redjax/storbar/internal/services/mountService"
)

// staticProber serves canned samples keyed by mount point, failing probes of
// anything it does not know.
type staticProber map[string]mountservice.UsageSample

func (p staticProber) Probe(mountPoint string) (mountservice.UsageSample, error) {
	if sample, ok := p[mountPoint]; ok {
		return sample, nil
	}
	return mountservice.UsageSample{}, errors.New("probe refused")
}

func sampleOf(totalGiB, freeGiB uint64) mountservice.UsageSample {
	total := totalGiB * gib
	free := freeGiB * gib
	used := total - free
	return mountservice.UsageSample{
		Total:       total,
		Free:        free,
		Used:        used,
		UsedPercent: float64(used) / float64(total) * 100,
	}
}

// The full pipeline against the synthetic two-mount table: 75% used root
// lands exactly on the high boundary, and the tmpfs mount never shows up.
func TestComposeEndToEnd(t *testing.T) {
	table := "/dev/sda1 / ext4 rw 0 0\ntmpfs /run tmpfs rw 0 0\n"
	prober := staticProber{
		"/":    sampleOf(100, 25),
		"/run": sampleOf(8, 8),
	}

	records := mountservice.ParseTable([]byte(table))
	mounts := mountservice.Collect(records, prober)
	report, err := Compose(mounts, TooltipNormal)
	require.NoError(t, err)

	require.Equal(t, "Storage", report.Text)
	require.Equal(t, SeverityHigh, report.Class)
	require.Equal(t, uint8(75), report.Percentage)

	require.Contains(t, report.Tooltip, "/dev/sda1 on /")
	require.NotContains(t, report.Tooltip, "tmpfs")
	require.NotContains(t, report.Tooltip, "/run")

	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf))
	want := `{"text":"Storage","tooltip":"/dev/sda1 on /\nSize: 100.00 GiB\nUsed: 75.00 GiB (75.0%)","class":"high","percentage":75}` + "\n"
	require.Equal(t, want, buf.String())
}

func TestComposeMissingRootDefaultsToLow(t *testing.T) {
	mounts := []mountservice.Mount{mount("/dev/sdb1", "/data", 500, 450)}

	report, err := Compose(mounts, TooltipNormal)
	require.NoError(t, err)

	// The full /data mount still gets a paragraph, but severity and
	// percentage track only the (absent) root mount.
	require.Equal(t, SeverityLow, report.Class)
	require.Equal(t, uint8(0), report.Percentage)
	require.Contains(t, report.Tooltip, "/dev/sdb1 on /data")
}

func TestComposeNoMountsFails(t *testing.T) {
	_, err := Compose(nil, TooltipNormal)
	require.Error(t, err)
}

func TestComposePercentageTruncatesTowardZero(t *testing.T) {
	m := mount("/dev/sda1", "/", 100, 75)
	m.Usage.UsedPercent = 75.9

	report, err := Compose([]mountservice.Mount{m}, TooltipCompact)
	require.NoError(t, err)
	require.Equal(t, uint8(75), report.Percentage)
}

func TestComposeCompactMode(t *testing.T) {
	mounts := []mountservice.Mount{
		mount("/dev/sda1", "/", 100, 40),
		mount("/dev/sdb1", "/data", 500, 100),
	}

	report, err := Compose(mounts, TooltipCompact)
	require.NoError(t, err)

	require.Equal(t, SeverityLow, report.Class)
	require.Equal(t, uint8(40), report.Percentage)
	require.NotContains(t, report.Tooltip, "\n\n")
}
