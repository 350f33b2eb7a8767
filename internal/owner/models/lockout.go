package models

import "time"

// LockoutPolicy bounds repeated failed logins for one email.
type LockoutPolicy struct {
	MaxAttempts  int
	Window       time.Duration
	LockDuration time.Duration
}

func DefaultLockoutPolicy() LockoutPolicy {
	return LockoutPolicy{
		MaxAttempts:  5,
		Window:       15 * time.Minute,
		LockDuration: 15 * time.Minute,
	}
}

// LoginLockout counts failed logins for Key inside a sliding window that
// starts at the first failure.
type LoginLockout struct {
	Key          string     `json:"key"`
	FailureCount int        `json:"failure_count"`
	WindowStart  time.Time  `json:"window_start"`
	LockedUntil  *time.Time `json:"locked_until,omitempty"`
}

func NewLoginLockout(key string) *LoginLockout {
	return &LoginLockout{Key: key}
}

func (l *LoginLockout) IsLocked(now time.Time) bool {
	return l.LockedUntil != nil && now.Before(*l.LockedUntil)
}

// RegisterFailure counts one failure and reports whether it locked the key.
// A failure after the window or an expired lock starts a new window.
func (l *LoginLockout) RegisterFailure(policy LockoutPolicy, now time.Time) bool {
	windowOver := l.WindowStart.IsZero() || !now.Before(l.WindowStart.Add(policy.Window))
	lockOver := l.LockedUntil != nil && !l.IsLocked(now)
	if windowOver || lockOver {
		l.FailureCount = 0
		l.WindowStart = now
		l.LockedUntil = nil
	}
	l.FailureCount++
	if l.LockedUntil == nil && l.FailureCount >= policy.MaxAttempts {
		until := now.Add(policy.LockDuration)
		l.LockedUntil = &until
		return true
	}
	return false
}

// ExpiresAt is when the record stops mattering and can be dropped.
func (l *LoginLockout) ExpiresAt(policy LockoutPolicy) time.Time {
	end := l.WindowStart.Add(policy.Window)
	if l.LockedUntil != nil && l.LockedUntil.After(end) {
		return *l.LockedUntil
	}
	return end
}
