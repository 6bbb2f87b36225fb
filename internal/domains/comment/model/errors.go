package model

import "errors"

var (
	// ErrNoParent means a comment write named neither a post nor a video.
	ErrNoParent = errors.New("comment must reference a post or a video")

	// ErrBothParents means a comment write named both parents under the
	// strict policy.
	ErrBothParents = errors.New("comment cannot reference both a post and a video")

	// ErrAuthorMissing means a comment row references an author the users
	// table no longer has, which the schema forbids.
	ErrAuthorMissing = errors.New("author row missing for non-null author_id")

	// ErrForbidden means the acting user does not own the comment and is
	// not an admin.
	ErrForbidden = errors.New("not allowed to manage this comment")
)
