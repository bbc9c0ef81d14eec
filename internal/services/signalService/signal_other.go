//go:build !linux

package signalservice

// Notify is a no-op off Linux; real-time signals and the host bar protocol
// only exist there.
func (n *Notifier) Notify() error {
	return nil
}
