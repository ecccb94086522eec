package courses

// CreateCourseRequest is the payload for course creation. Only the title is
// mandatory.
type CreateCourseRequest struct {
	Title       string  `json:"title" validate:"required" example:"Introduction to Go"`
	Description *string `json:"description,omitempty" example:"A first course on Go."`
	Category    *string `json:"category,omitempty" example:"programming"`
}

// UpdateCourseRequest is the payload for a partial course update. Nil fields
// are left untouched; a non-nil Description may clear the stored value with
// an empty string.
type UpdateCourseRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty" validate:"omitempty,min=1"`
}
