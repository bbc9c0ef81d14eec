package reportservice

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/redjax/storbar/internal/constants"
	mountservice "github.com/redjax/storbar/internal/services/mountService"
	"github.com/redjax/storbar/internal/utils/invariant"
)

// Compose builds the cycle's report from the retained mounts. Severity and
// percentage come from the root mount alone; every mount contributes a
// tooltip paragraph. A table with no root mount defaults to 0% / low rather
// than erroring, since on a healthy host that is a mount-namespace artifact,
// not a disk problem. An empty retained set can only mean a bug or a broken
// host (there is always at least a root filesystem) and fails the cycle.
func Compose(mounts []mountservice.Mount, mode TooltipMode) (Report, error) {
	invariant.Checkf(len(mounts) > 0, "no mounts retained for report")
	if len(mounts) == 0 {
		return Report{}, fmt.Errorf("no reportable mounts")
	}

	rootPercent := 0.0
	rootSeen := false
	for _, mount := range mounts {
		if mount.MountPoint == "/" {
			rootPercent = mount.Usage.UsedPercent
			rootSeen = true
			break
		}
	}
	if !rootSeen {
		logrus.Warn("no root mount in table, reporting 0% / low")
	}

	// uint8 conversion truncates toward zero; the sample invariant keeps
	// the percent within [0,100] so this cannot overflow.
	return Report{
		Text:       constants.OutputText,
		Tooltip:    mode.Tooltip(mounts),
		Class:      Classify(rootPercent),
		Percentage: uint8(rootPercent),
	}, nil
}
