package mountservice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPseudoName(t *testing.T) {
	for _, fstype := range []string{"proc", "sysfs", "tmpfs", "devtmpfs", "cgroup2", "debugfs", "overlay", "squashfs"} {
		require.True(t, PseudoName(fstype), "expected %s to be filtered", fstype)
	}

	for _, fstype := range []string{"ext4", "xfs", "btrfs", "vfat", "nfs4", "zfs", ""} {
		require.False(t, PseudoName(fstype), "expected %s to be kept", fstype)
	}
}

func TestPseudoNameExactMembershipOnly(t *testing.T) {
	// No prefix or partial matches.
	require.False(t, PseudoName("tmpfs2"))
	require.False(t, PseudoName("tmp"))
	require.False(t, PseudoName("TMPFS"))
	require.False(t, PseudoName("cgroup3"))
}
