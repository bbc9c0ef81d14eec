package reportservice

import (
	"fmt"
	"strings"

	mountservice "github.com/redjax/storbar/internal/services/mountService"
	utils "github.com/redjax/storbar/internal/utils/convert"
)

// TooltipMode selects the per-mount paragraph layout.
type TooltipMode int

const (
	// TooltipNormal emits three lines per mount with a blank line between
	// paragraphs.
	TooltipNormal TooltipMode = iota
	// TooltipCompact emits two lines per mount with single-newline
	// paragraph boundaries.
	TooltipCompact
)

func (m TooltipMode) String() string {
	switch m {
	case TooltipCompact:
		return "compact"
	default:
		return "normal"
	}
}

// ParseTooltipMode validates a mode name from the CLI or config. An
// unrecognized name is a startup-fatal configuration error.
func ParseTooltipMode(name string) (TooltipMode, error) {
	switch name {
	case "normal":
		return TooltipNormal, nil
	case "compact":
		return TooltipCompact, nil
	default:
		return TooltipNormal, fmt.Errorf("unknown tooltip mode %q (want normal or compact)", name)
	}
}

// separator returns the paragraph boundary for the mode. Paragraphs are
// joined structurally, so there is never a trailing separator to trim.
func (m TooltipMode) separator() string {
	if m == TooltipCompact {
		return "\n"
	}
	return "\n\n"
}

// paragraph renders one mount's self-contained tooltip block. Sizes are in
// GiB with two decimals, percentages with one.
func (m TooltipMode) paragraph(mount mountservice.Mount) string {
	header := fmt.Sprintf("%s on %s", mount.Device, mount.MountPoint)
	total := utils.BytesToGiB(mount.Usage.Total)
	used := utils.BytesToGiB(mount.Usage.Used)

	if m == TooltipCompact {
		return header + "\n" + fmt.Sprintf("Used: %.2f GiB of %.2f GiB (%.1f%%)",
			used, total, mount.Usage.UsedPercent)
	}

	return header + "\n" +
		fmt.Sprintf("Size: %.2f GiB", total) + "\n" +
		fmt.Sprintf("Used: %.2f GiB (%.1f%%)", used, mount.Usage.UsedPercent)
}

// Tooltip assembles the full tooltip block for the retained mounts.
func (m TooltipMode) Tooltip(mounts []mountservice.Mount) string {
	paragraphs := make([]string, 0, len(mounts))
	for _, mount := range mounts {
		paragraphs = append(paragraphs, m.paragraph(mount))
	}
	return strings.Join(paragraphs, m.separator())
}
