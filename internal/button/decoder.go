// Package button decodes the power-button pulse bursts on the hat's GPIO
// line. The hardware encodes the requested action in the number of rising
// edges emitted per press: 2-3 means reboot, 4-5 means power off.
package button

import (
	"context"
	"sync/atomic"
	"time"

	"argonone-ng/internal/config"
	"argonone-ng/internal/power"
)

// Classify maps a completed burst's pulse count to a power action. Counts
// outside the two bands (0, 1, or 6+) are noise and decode to nothing.
func Classify(n uint32) (power.Action, bool) {
	switch n {
	case 2, 3:
		return power.Reboot, true
	case 4, 5:
		return power.Poweroff, true
	}
	return "", false
}

// Decoder counts rising-edge pulses from an interrupt handler and, once the
// count holds still for the quiet window, decodes the burst and fires the
// matching power action exactly once.
type Decoder struct {
	pollInterval time.Duration
	quietTicks   int

	// pulses is incremented from the GPIO event goroutine and read from the
	// poll loop; atomic access is the only synchronization.
	pulses atomic.Uint32

	runner power.Runner

	last        uint32
	stableTicks int
}

func NewDecoder(cfg config.ButtonConfig, runner power.Runner) *Decoder {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 50 * time.Millisecond
	}
	if cfg.QuietWindow <= 0 {
		cfg.QuietWindow = 400 * time.Millisecond
	}
	quietTicks := int((cfg.QuietWindow + cfg.PollInterval - 1) / cfg.PollInterval)
	if quietTicks < 1 {
		quietTicks = 1
	}
	return &Decoder{
		pollInterval: cfg.PollInterval,
		quietTicks:   quietTicks,
		runner:       runner,
	}
}

// Pulse records one rising edge. Safe to call from the GPIO event handler
// concurrently with Run.
func (d *Decoder) Pulse() {
	d.pulses.Add(1)
}

// Run polls the pulse counter until ctx is canceled. A power-action spawn
// failure is returned as-is; the caller treats it as fatal.
func (d *Decoder) Run(ctx context.Context) error {
	t := time.NewTicker(d.pollInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			a, ok := d.step()
			if !ok {
				continue
			}
			if err := d.runner.Trigger(a); err != nil {
				return err
			}
		}
	}
}

// step advances the burst state machine by one poll tick and returns the
// decoded action once a burst completes.
func (d *Decoder) step() (power.Action, bool) {
	n := d.pulses.Load()
	if n == 0 {
		d.last, d.stableTicks = 0, 0
		return "", false
	}
	if n != d.last {
		d.last, d.stableTicks = n, 0
		return "", false
	}
	d.stableTicks++
	if d.stableTicks < d.quietTicks {
		return "", false
	}
	// Burst complete: consume the count so the action fires once. A pulse
	// racing in between Load and the swap restarts the quiet window.
	if !d.pulses.CompareAndSwap(n, 0) {
		d.stableTicks = 0
		return "", false
	}
	d.last, d.stableTicks = 0, 0
	return Classify(n)
}
