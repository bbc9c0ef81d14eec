package mountservice

import (
	"fmt"
	"time"
)

// Prober queries live capacity statistics for one mount point. Probes block;
// wrap with WithTimeout to bound them.
type Prober interface {
	Probe(mountPoint string) (UsageSample, error)
}

// WithTimeout bounds each probe of inner to d. A probe that misses the
// deadline is reported as a record-local error, so one unresponsive mount
// (a dead network filesystem, typically) cannot stall the rest of the cycle.
// The underlying syscall is not cancellable; the stuck goroutine is
// abandoned and its late result discarded.
func WithTimeout(inner Prober, d time.Duration) Prober {
	return &timeoutProber{inner: inner, timeout: d}
}

type timeoutProber struct {
	inner   Prober
	timeout time.Duration
}

type probeResult struct {
	sample UsageSample
	err    error
}

func (p *timeoutProber) Probe(mountPoint string) (UsageSample, error) {
	ch := make(chan probeResult, 1)

	go func() {
		sample, err := p.inner.Probe(mountPoint)
		ch <- probeResult{sample: sample, err: err}
	}()

	timer := time.NewTimer(p.timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		return res.sample, res.err
	case <-timer.C:
		return UsageSample{}, fmt.Errorf("probing %s: timed out after %v", mountPoint, p.timeout)
	}
}
