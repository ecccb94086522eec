// Package auth contains authentication and authorization logic: user
// registration and login, token issuance and verification, and the
// authenticate/authorize middleware chain applied per route.
// This file defines the domain entities of the auth module.
package auth

import "time"

// Role is the closed set of user roles. Keeping it a dedicated type forces
// role checks through set membership rather than ad hoc string comparison,
// so a typo cannot silently widen access.
type Role string

const (
	// RoleStudent is the default role assigned on registration.
	RoleStudent Role = "student"
	// RoleTeacher gates course mutation and log listing. There is no
	// separate admin role; teachers carry the administrative permissions.
	RoleTeacher Role = "teacher"
)

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher:
		return true
	}
	return false
}

// User represents a user record as stored in the database and used in
// business logic. The `json:"-"` tag on HashedPassword keeps the hash out of
// every serialized response.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// Principal is the request-scoped identity attached to the context by the
// Authenticate middleware after the bearer credential has been resolved
// against a live user row.
type Principal struct {
	ID    int64
	Name  string
	Email string
	Role  Role
}
