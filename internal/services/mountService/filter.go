package mountservice

// Pseudo filesystem types by canonical name. Used before probing (saves a
// syscall on known types) and as the only filter on probe backends that
// cannot report a magic number. Must stay in step with the magic table in
// filter_linux.go; the tests cover both.
var pseudoNames = map[string]struct{}{
	"autofs":      {},
	"binfmt_misc": {},
	"bpf":         {},
	"cgroup":      {},
	"cgroup2":     {},
	"configfs":    {},
	"debugfs":     {},
	"devpts":      {},
	"devtmpfs":    {},
	"efivarfs":    {},
	"fusectl":     {},
	"hugetlbfs":   {},
	"mqueue":      {},
	"nsfs":        {},
	"overlay":     {},
	"proc":        {},
	"pstore":      {},
	"ramfs":       {},
	"securityfs":  {},
	"selinuxfs":   {},
	"squashfs":    {},
	"sysfs":       {},
	"tmpfs":       {},
	"tracefs":     {},
}

// PseudoName reports whether fstype names a pseudo/virtual filesystem.
// Exact membership only, no prefix matching.
func PseudoName(fstype string) bool {
	_, ok := pseudoNames[fstype]
	return ok
}
