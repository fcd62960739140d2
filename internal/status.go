package internal

import "time"

// StatusMessage is the single live user-visible message. It is a plain value:
// emitting a new one replaces it wholesale, and expiry is a question the
// renderer asks each frame rather than something that mutates state.
type StatusMessage struct {
	Text      string
	CreatedAt time.Time
}

// Visible reports whether the message should still be drawn at the given
// instant. The message itself is never discarded on expiry, only replaced by
// the next emission.
func (m StatusMessage) Visible(now time.Time, ttl time.Duration) bool {
	return now.Sub(m.CreatedAt) < ttl
}
