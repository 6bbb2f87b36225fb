package model

import "errors"

var (
	// ErrEmailTaken is raised when an upsert would claim an email that
	// belongs to a different user row.
	ErrEmailTaken = errors.New("email already in use")

	// ErrForbidden means the acting user may not manage the target
	// account. Only admins may touch accounts other than their own.
	ErrForbidden = errors.New("not allowed to manage this user")
)
