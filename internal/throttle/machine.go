// Package throttle implements the escalating lockout state machine guarding
// the admin login endpoint. The machine itself is pure; persistence lives in
// the cookie codec and the optional Redis store.
package throttle

import (
	"regexp"
	"time"
)

// MaxLevel caps lockout escalation. Level 5 lockouts recur for every further
// burst of failures.
const MaxLevel = 5

// attemptsPerLockout is how many failures trigger one escalation.
const attemptsPerLockout = 3

// timeoutDurations maps a lockout level to its duration.
var timeoutDurations = map[int]time.Duration{
	1: 10 * time.Minute,
	2: 30 * time.Minute,
	3: 60 * time.Minute,
	4: 2 * time.Hour,
	5: 24 * time.Hour,
}

// TimeoutForLevel returns the lockout duration for a level, zero for level 0.
func TimeoutForLevel(level int) time.Duration {
	return timeoutDurations[level]
}

// Record holds the per-identity attempt counters. The zero value is the
// Clear state: no failures, no lockout history.
type Record struct {
	Attempts     int   `json:"attempts"`
	TimeoutLevel int   `json:"timeoutLevel"`
	TimeoutUntil int64 `json:"timeoutUntil"`
}

// LockedUntil returns the lockout deadline.
func (r Record) LockedUntil() time.Time {
	return time.UnixMilli(r.TimeoutUntil)
}

// Machine evaluates throttle transitions against an injected clock.
type Machine struct {
	now func() time.Time
}

// NewMachine creates a machine. A nil clock defaults to time.Now.
func NewMachine(now func() time.Time) *Machine {
	if now == nil {
		now = time.Now
	}
	return &Machine{now: now}
}

// Check reports whether the identity is locked out and, if so, for how much
// longer. Callers must reject locked attempts before touching credentials.
func (m *Machine) Check(rec Record) (remaining time.Duration, locked bool) {
	now := m.now()
	if rec.TimeoutUntil > now.UnixMilli() {
		return rec.LockedUntil().Sub(now), true
	}
	return 0, false
}

// RemainingMinutes converts a lockout remainder to the whole minutes reported
// to the caller, rounding up so "0 minutes" is never shown while locked.
func RemainingMinutes(remaining time.Duration) int {
	minutes := int((remaining + time.Minute - 1) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// Fail records one failed attempt. Every third failure escalates the lockout
// level (capped at MaxLevel), arms the corresponding timeout and resets the
// attempt counter. The level never decreases.
func (m *Machine) Fail(rec Record) Record {
	rec.Attempts++
	if rec.Attempts >= attemptsPerLockout {
		level := rec.TimeoutLevel + 1
		if level > MaxLevel {
			level = MaxLevel
		}
		rec.TimeoutLevel = level
		rec.TimeoutUntil = m.now().Add(timeoutDurations[level]).UnixMilli()
		rec.Attempts = 0
	}
	return rec
}

// Succeed clears the attempt counter after a successful login. The lockout
// level is deliberately preserved so a slow brute force cannot reset its own
// escalation by landing one valid login.
func (m *Machine) Succeed(rec Record) Record {
	rec.Attempts = 0
	return rec
}

var identityPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SanitizeIdentity derives the cookie-safe identity key from a submitted
// email: every non-alphanumeric rune becomes an underscore.
func SanitizeIdentity(email string) string {
	return identityPattern.ReplaceAllString(email, "_")
}

// CookieName returns the throttle cookie name for an identity.
func CookieName(identity string) string {
	return "admin_login_throttle_" + identity
}
