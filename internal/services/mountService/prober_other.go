//go:build !linux

package mountservice

// DefaultProber returns the backend the run command uses on this platform.
// Off Linux there is no statfs wrapper, so the portable backend serves.
func DefaultProber() Prober {
	return PortableProber{}
}
