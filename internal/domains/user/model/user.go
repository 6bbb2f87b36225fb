package model

import (
	"time"

	"github.com/google/uuid"
)

// Role enumerates what a user may do on the platform.
type Role string

const (
	RoleUser   Role = "user"
	RoleAuthor Role = "author"
	RoleAdmin  Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAuthor, RoleAdmin:
		return true
	}
	return false
}

// User is the identity record every piece of content hangs off of.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     *string   `json:"email"`
	Name      *string   `json:"name"`
	Image     *string   `json:"image"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertUserParams carries the columns an upsert may set. Nil fields are
// left untouched on an existing row; on insert they default per schema.
type UpsertUserParams struct {
	ID    uuid.UUID
	Email *string
	Name  *string
	Image *string
	Role  *Role
}
