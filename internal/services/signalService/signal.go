package signalservice

// Notifier pokes the host bar process after each report so it re-reads the
// module output. Lookup is by exact short command name, first match wins;
// a bar that is not running is silently skipped, never an error.
type Notifier struct {
	// Process is the short command name of the host bar.
	Process string
	// Offset is added to userspace SIGRTMIN to form the re-render signal.
	Offset int
}

func New(process string, offset int) *Notifier {
	return &Notifier{Process: process, Offset: offset}
}
