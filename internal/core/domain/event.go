package domain

import (
	"errors"
	"time"
)

var ErrEventNotFound = errors.New("event not found")

// Event is a calendar entry owned by exactly one user. OwnerID is fixed at
// creation and never changes.
type Event struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}
