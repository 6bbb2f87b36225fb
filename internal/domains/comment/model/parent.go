package model

import "github.com/google/uuid"

// ParentPolicy decides what happens when a write supplies both a post
// and a video reference. Strict rejects; permissive keeps the post and
// drops the video. Neither policy accepts a parentless comment.
type ParentPolicy string

const (
	ParentPolicyStrict     ParentPolicy = "strict"
	ParentPolicyPermissive ParentPolicy = "permissive"
)

func (p ParentPolicy) IsValid() bool {
	return p == ParentPolicyStrict || p == ParentPolicyPermissive
}

// CommentParent is a tagged union over the two parent kinds. The zero
// value is invalid; values are built through ParentPost, ParentVideo,
// or ParentFromIDs.
type CommentParent struct {
	postID  *uuid.UUID
	videoID *uuid.UUID
}

func ParentPost(id uuid.UUID) CommentParent {
	return CommentParent{postID: &id}
}

func ParentVideo(id uuid.UUID) CommentParent {
	return CommentParent{videoID: &id}
}

// ParentFromIDs builds a parent from the raw nullable pair as it
// arrives over the wire, applying the exclusivity policy.
func ParentFromIDs(postID, videoID *uuid.UUID, policy ParentPolicy) (CommentParent, error) {
	switch {
	case postID == nil && videoID == nil:
		return CommentParent{}, ErrNoParent
	case postID != nil && videoID != nil:
		if policy == ParentPolicyPermissive {
			return ParentPost(*postID), nil
		}
		return CommentParent{}, ErrBothParents
	case postID != nil:
		return ParentPost(*postID), nil
	default:
		return ParentVideo(*videoID), nil
	}
}

// PostID returns the post reference, nil for video-parented comments.
func (p CommentParent) PostID() *uuid.UUID {
	return p.postID
}

// VideoID returns the video reference, nil for post-parented comments.
func (p CommentParent) VideoID() *uuid.UUID {
	return p.videoID
}

// IsZero reports an unconstructed parent.
func (p CommentParent) IsZero() bool {
	return p.postID == nil && p.videoID == nil
}
