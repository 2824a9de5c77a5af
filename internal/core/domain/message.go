package domain

import "time"

// ContactMessage is an append-only record of a public contact-form
// submission. Messages are never mutated or deleted by the API.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
