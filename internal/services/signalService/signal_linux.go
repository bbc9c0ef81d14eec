//go:build linux

package signalservice

import (
	"fmt"
	"syscall"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/redjax/storbar/internal/constants"
)

// Notify looks up the host bar by name and delivers the real-time signal.
// Returns an error only when a found process cannot be signaled; an absent
// bar is not an error.
func (n *Notifier) Notify() error {
	procs, err := process.Processes()
	if err != nil {
		return fmt.Errorf("listing processes: %w", err)
	}

	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			// Processes can exit mid-enumeration.
			continue
		}
		if name != n.Process {
			continue
		}

		sig := n.signalNumber()
		if err := unix.Kill(int(p.Pid), sig); err != nil {
			return fmt.Errorf("signaling %s (pid %d) with %d: %w", n.Process, p.Pid, sig, err)
		}

		logrus.WithFields(logrus.Fields{
			"process": n.Process,
			"pid":     p.Pid,
			"signal":  int(sig),
		}).Debug("signaled host process")
		return nil
	}

	logrus.WithField("process", n.Process).Debug("host process not running, skipping signal")
	return nil
}

func (n *Notifier) signalNumber() syscall.Signal {
	return syscall.Signal(constants.SigrtMin + n.Offset)
}
