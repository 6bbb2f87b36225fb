package model

import "errors"

var (
	// ErrAuthorMissing means a joined row came back without its author
	// even though author_id is a non-null foreign key. That is a broken
	// invariant in the store, not a normal miss, and it fails loudly.
	ErrAuthorMissing = errors.New("author row missing for non-null author_id")

	// ErrForbidden is raised when the caller does not own the post and
	// is not an admin.
	ErrForbidden = errors.New("not allowed to modify this post")
)
