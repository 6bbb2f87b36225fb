package shared

import "github.com/google/uuid"

// Actor identifies the authenticated caller of a mutation. Kept here to
// avoid import cycles between the domains and the middleware.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  string
}

const (
	RoleUser   = "user"
	RoleAuthor = "author"
	RoleAdmin  = "admin"
)

// CanManage reports whether the actor may mutate content owned by the
// given author. Admins may mutate anything; everyone else only their own.
func (a Actor) CanManage(authorID uuid.UUID) bool {
	return a.Role == RoleAdmin || a.ID == authorID
}

// IsPublisher reports whether the actor may create content at all.
func (a Actor) IsPublisher() bool {
	return a.Role == RoleAuthor || a.Role == RoleAdmin
}

// Page bounds a list operation. Defaults live in the operation contract
// itself rather than in ambient configuration.
type Page struct {
	Limit  int
	Offset int
}

const (
	DefaultLimit  = 20
	DefaultOffset = 0
)

// Normalize applies the contract defaults: limit 20 when unset or
// negative, offset 0 when negative. No upper bound is enforced here;
// clamping is the route layer's job.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Offset < 0 {
		p.Offset = DefaultOffset
	}
	return p
}
