package invariant

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Checkf is for conditions that can only be false if there is a bug in this
// program or a lying kernel, never because of user input. In release builds a
// violation is logged and execution continues with a clamped/default value
// chosen by the caller. Building with -tags strictchecks turns violations
// into panics.
func Checkf(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}

	msg := fmt.Sprintf(format, args...)
	logrus.Errorf("invariant violated: %s", msg)

	if strictChecks {
		panic("invariant violated: " + msg)
	}
}
