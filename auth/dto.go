// Data transfer objects for the auth endpoints. The `validate` struct tags
// drive the declarative validation step each handler runs before touching
// the service layer.
package auth

// RegisterRequest represents the registration request payload. Role is
// optional and defaults to student; only values from the closed role set are
// accepted.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" example:"Jane Doe"`
	Email    string `json:"email" validate:"required,email" example:"jane@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"strongpassword123"`
	Role     Role   `json:"role,omitempty" validate:"omitempty,oneof=student teacher" example:"student"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"jane@example.com"`
	Password string `json:"password" validate:"required" example:"strongpassword123"`
}

// AuthData is the data block returned by register and login: the user record
// (sans password hash) and a signed bearer token.
type AuthData struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
