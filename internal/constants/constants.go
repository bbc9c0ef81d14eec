package constants

import "time"

// Fixed pieces of the bar protocol. The host bar matches on these, so they
// are not configurable.
const (
	// Label shown in the bar next to the percentage.
	OutputText = "Storage"

	// Lowest real-time signal number on Linux. glibc reserves the first two
	// kernel RT signals for its threading internals, so userspace SIGRTMIN
	// is 34, not 32.
	SigrtMin = 34
)

// Defaults for everything the config layer can override.
const (
	// DefaultMountTable is where the kernel lists mounted filesystems.
	DefaultMountTable = "/proc/mounts"

	// DefaultMaxTableSize bounds how much of the mount table is read per
	// cycle. Reads past this arrive truncated; the parser treats a cut-off
	// final line as end of table.
	DefaultMaxTableSize = 8 * 1024

	// DefaultInterval is the delay between report cycles.
	DefaultInterval = 20 * time.Second

	// DefaultHostProcess is the bar process that gets signaled after each
	// report so it re-reads the module output.
	DefaultHostProcess = "waybar"

	// DefaultSignalOffset is added to SigrtMin to form the re-render signal.
	DefaultSignalOffset = 8

	// DefaultTooltipMode selects the multi-line tooltip layout.
	DefaultTooltipMode = "normal"

	// DefaultLanguage is a BCP-47 tag. Reserved: parsed and stored, output
	// strings are not translated yet.
	DefaultLanguage = "en"
)
