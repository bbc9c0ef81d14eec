package mountservice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSample(t *testing.T) {
	s := newSample(100*gib, 25*gib)

	require.Equal(t, 100*gib, s.Total)
	require.Equal(t, 25*gib, s.Free)
	require.Equal(t, 75*gib, s.Used)
	require.InDelta(t, 75.0, s.UsedPercent, 0.0001)
	require.False(t, s.HasMagic)
}

func TestNewSamplePercentAlwaysInRange(t *testing.T) {
	cases := []struct {
		name        string
		total, free uint64
	}{
		{"empty", 100 * gib, 100 * gib},
		{"full", 100 * gib, 0},
		{"nearly full", 100 * gib, 1},
		{"tiny filesystem", 3, 1},
		{"single byte", 1, 0},
		{"huge filesystem", 1 << 62, 1 << 61},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSample(tc.total, tc.free)
			require.GreaterOrEqual(t, s.UsedPercent, 0.0)
			require.LessOrEqual(t, s.UsedPercent, 100.0)
			require.Equal(t, tc.total-tc.free, s.Used)
		})
	}
}

func TestNewSampleZeroTotalIsNonReportable(t *testing.T) {
	s := newSample(0, 0)

	require.Zero(t, s.Total)
	require.Zero(t, s.Used)
	require.Zero(t, s.UsedPercent)
}

// A free count above total can only come from a broken measurement; the
// sample is clamped instead of reporting an impossible percentage.
func TestNewSampleClampsBrokenMeasurement(t *testing.T) {
	s := newSample(10*gib, 20*gib)

	require.Zero(t, s.Used)
	require.Zero(t, s.UsedPercent)
}
