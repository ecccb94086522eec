package audit

import "time"

// Entry represents a row of the append-only logs table. UserID is nullable:
// some recorded actions occur before authentication resolves an identity.
type Entry struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"userId"`
	Action    string    `json:"action"`
	Result    *string   `json:"result"`
	Timestamp time.Time `json:"timestamp"`
	User      *Actor    `json:"user,omitempty"`
}

// Actor is the slim user projection joined into log listings.
type Actor struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Pagination carries listing metadata for the logs endpoint.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}
