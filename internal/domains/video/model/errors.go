package model

import "errors"

var (
	// ErrAuthorMissing means a video row references an author the users
	// table no longer has. The schema forbids this, so it is reported
	// loudly instead of being dropped from results.
	ErrAuthorMissing = errors.New("author row missing for non-null author_id")

	// ErrForbidden means the acting user does not own the video and is
	// not an admin.
	ErrForbidden = errors.New("not allowed to manage this video")
)
