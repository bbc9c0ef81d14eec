//go:build linux

package mountservice

import (
	"golang.org/x/sys/unix"
)

// Magics missing from x/sys/unix, values from linux/magic.h.
const (
	configfsMagic = 0x62656570
	fusectlMagic  = 0x65735543
	mqueueMagic   = 0x19800202
)

// Pseudo filesystem types by statfs f_type magic. The name table in
// filter.go covers the same set; devtmpfs shares TMPFS_MAGIC and selinuxfs
// is SELINUX_MAGIC, so the magic table has fewer entries than the name one.
var pseudoMagics = map[int64]struct{}{
	unix.AUTOFS_SUPER_MAGIC:    {},
	unix.BINFMTFS_MAGIC:        {},
	unix.BPF_FS_MAGIC:          {},
	unix.CGROUP_SUPER_MAGIC:    {},
	unix.CGROUP2_SUPER_MAGIC:   {},
	configfsMagic:              {},
	unix.DEBUGFS_MAGIC:         {},
	unix.DEVPTS_SUPER_MAGIC:    {},
	unix.EFIVARFS_MAGIC:        {},
	fusectlMagic:               {},
	unix.HUGETLBFS_MAGIC:       {},
	mqueueMagic:                {},
	unix.NSFS_MAGIC:            {},
	unix.OVERLAYFS_SUPER_MAGIC: {},
	unix.PROC_SUPER_MAGIC:      {},
	unix.PSTOREFS_MAGIC:        {},
	unix.RAMFS_MAGIC:           {},
	unix.SECURITYFS_MAGIC:      {},
	unix.SELINUX_MAGIC:         {},
	unix.SQUASHFS_MAGIC:        {},
	unix.SYSFS_MAGIC:           {},
	unix.TMPFS_MAGIC:           {},
	unix.TRACEFS_MAGIC:         {},
}

// PseudoMagic reports whether magic identifies a pseudo/virtual filesystem.
// Exact membership only. A mount reporting a pseudo magic is dropped no
// matter what its textual type claims.
func PseudoMagic(magic int64) bool {
	_, ok := pseudoMagics[magic]
	return ok
}
