// Package alarm implements the reminder trigger decision as a pure state
// machine. The checker owns no timer: callers drive it by calling Tick with
// the current time, typically once per second.
package alarm

import (
	"time"
)

// Status mirrors the persisted alarm lifecycle.
type Status string

const (
	StatusActive    Status = "active"
	StatusTriggered Status = "triggered"
	StatusDismissed Status = "dismissed"
)

// TriggerWindow is how long past its target time an alarm still fires. An
// alarm whose window elapsed while no checker was running never fires.
const TriggerWindow = 5 * time.Second

// Alarm is the slice of a persisted alarm the checker inspects.
type Alarm struct {
	ID                  string
	Title               string
	Notes               string
	At                  time.Time
	Status              Status
	SoundEnabled        bool
	NotificationEnabled bool
}

// Firing is one trigger decision plus the side effects it requests. The
// caller is responsible for executing effects and persisting the status
// transition to triggered.
type Firing struct {
	Alarm     Alarm
	PlaySound bool
	Notify    bool
}

// SoundPlayer plays the alarm tone. Implementations may silently no-op when
// audio is unavailable.
type SoundPlayer interface {
	Play()
}

// Notifier raises a user-visible notification. Implementations may silently
// no-op when permission is missing.
type Notifier interface {
	Notify(title, body string)
}

// Checker tracks which alarms already fired during its lifetime. The handled
// set is deliberately in-memory only: after a restart, re-firing is prevented
// by the stored triggered status instead, and an alarm whose status write
// raced the restart may fire twice. That race is accepted, not fixed.
type Checker struct {
	window  time.Duration
	handled map[string]struct{}
}

// NewChecker returns a checker using the default 5-second trigger window.
func NewChecker() *Checker {
	return &Checker{
		window:  TriggerWindow,
		handled: make(map[string]struct{}),
	}
}

// Tick evaluates the given alarms at now and returns one Firing per alarm
// crossing its target time for the first time. Only active alarms not yet in
// the handled set are considered; each fired alarm is added to the set before
// being returned, so a Firing is produced at most once per checker lifetime.
func (c *Checker) Tick(now time.Time, alarms []Alarm) []Firing {
	var firings []Firing

	for _, a := range alarms {
		if a.Status != StatusActive {
			continue
		}
		if _, done := c.handled[a.ID]; done {
			continue
		}

		sinceTarget := now.Sub(a.At)
		if sinceTarget < 0 || sinceTarget >= c.window {
			continue
		}

		c.handled[a.ID] = struct{}{}
		firings = append(firings, Firing{
			Alarm:     a,
			PlaySound: a.SoundEnabled,
			Notify:    a.NotificationEnabled,
		})
	}

	return firings
}

// Forget removes an alarm from the handled set, mirroring a user dismissal
// that makes the id eligible again should the alarm ever be re-armed.
func (c *Checker) Forget(id string) {
	delete(c.handled, id)
}

// Handled reports whether the checker already fired the given alarm id.
func (c *Checker) Handled(id string) bool {
	_, ok := c.handled[id]
	return ok
}
