//go:build linux

package signalservice

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignalNumber(t *testing.T) {
	// Userspace SIGRTMIN is 34; the default offset 8 gives RT signal 42,
	// which is what waybar modules conventionally listen on.
	n := New("waybar", 8)
	require.Equal(t, syscall.Signal(42), n.signalNumber())

	require.Equal(t, syscall.Signal(34), New("waybar", 0).signalNumber())
}

func TestNotifyAbsentProcessIsNotAnError(t *testing.T) {
	n := New("storbar-test-no-such-process", 8)
	require.NoError(t, n.Notify())
}
