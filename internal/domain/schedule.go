package domain

import (
	"errors"
	"time"
)

// ErrPostNotFound is returned by ReschedulePost for an absent ID.
var ErrPostNotFound = errors.New("scheduled post not found")

// ScheduledPost is a draft accepted by the user and filed against a
// calendar date and time-of-day for later publication. Owned by the
// schedule store after creation; only date and time may change afterwards.
type ScheduledPost struct {
	ID          PostID
	Content     string
	PersonaID   PersonaID
	PersonaName string
	Date        time.Time // calendar day; time-of-day component is ignored
	Time        string    // "HH:MM", kept separate from Date as entered
	Notes       string
	CreatedAt   time.Time
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayStart truncates an instant to midnight of its calendar day.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
