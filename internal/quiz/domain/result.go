package domain

import "time"

// Result is one finished quiz run. Append-only; there is no update flow.
type Result struct {
	ID        string
	UserID    string
	Score     int
	CreatedAt time.Time
}
