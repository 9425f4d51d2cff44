package inventory

import "time"

// Pacer enforces a minimum interval between upstream-facing product checks,
// replacing a hardcoded sleep with a swappable policy.
type Pacer struct {
	interval time.Duration
	sleep    func(time.Duration)
}

// NewPacer creates a pacer with the given minimum inter-product interval.
// A non-positive interval disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval, sleep: time.Sleep}
}

// Pause blocks for the configured interval.
func (p *Pacer) Pause() {
	if p.interval > 0 {
		p.sleep(p.interval)
	}
}
