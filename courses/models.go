// Package courses implements course management: public reads, teacher-gated
// creation, and owner-only mutation. It follows the same
// models/dto/service/handlers split as the auth module.
package courses

import "time"

// Course represents a course record. Description and category are nullable
// in the store, so they are pointers here and serialize to null when unset.
type Course struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	CreatedBy   int64     `json:"createdBy"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Creator     *Creator  `json:"creator,omitempty"`
}

// Creator is the slim user projection embedded in course responses.
type Creator struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
