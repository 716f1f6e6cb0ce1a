// Package power issues OS-level reboot and power-off requests.
//
// Actions are fire-and-forget: the daemon is about to be torn down by the
// action itself, so the child's exit status is never collected.
package power

import (
	"fmt"
	"os/exec"
	"sync"
)

type Action string

const (
	Reboot   Action = "reboot"
	Poweroff Action = "poweroff"
)

// Runner triggers a power action. Implementations must not block on the
// command completing.
type Runner interface {
	Trigger(a Action) error
}

// Systemd runs power actions through systemctl.
type Systemd struct{}

func (Systemd) Trigger(a Action) error {
	switch a {
	case Reboot, Poweroff:
	default:
		return fmt.Errorf("power: unknown action %q", a)
	}
	cmd := exec.Command("systemctl", string(a))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("power: spawn systemctl %s: %w", a, err)
	}
	// Detach; systemctl will outlive or kill us either way.
	go func() { _ = cmd.Wait() }()
	return nil
}

// Recorder captures actions for tests. Safe for concurrent use; the button
// decoder triggers from its own goroutine.
type Recorder struct {
	mu      sync.Mutex
	actions []Action

	Err error
}

func (r *Recorder) Trigger(a Action) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, a)
	return nil
}

func (r *Recorder) Actions() []Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Action(nil), r.actions...)
}
