package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentParentConstructors(t *testing.T) {
	postID := uuid.New()
	videoID := uuid.New()

	p := ParentPost(postID)
	require.NotNil(t, p.PostID())
	assert.Equal(t, postID, *p.PostID())
	assert.Nil(t, p.VideoID())
	assert.False(t, p.IsZero())

	v := ParentVideo(videoID)
	require.NotNil(t, v.VideoID())
	assert.Equal(t, videoID, *v.VideoID())
	assert.Nil(t, v.PostID())

	assert.True(t, CommentParent{}.IsZero())
}

func TestParentFromIDs(t *testing.T) {
	postID := uuid.New()
	videoID := uuid.New()

	tests := []struct {
		name     string
		postID   *uuid.UUID
		videoID  *uuid.UUID
		policy   ParentPolicy
		wantErr  error
		wantPost bool
	}{
		{name: "post only", postID: &postID, policy: ParentPolicyStrict, wantPost: true},
		{name: "video only", videoID: &videoID, policy: ParentPolicyStrict},
		{name: "neither rejected under strict", policy: ParentPolicyStrict, wantErr: ErrNoParent},
		{name: "neither rejected under permissive too", policy: ParentPolicyPermissive, wantErr: ErrNoParent},
		{name: "both rejected under strict", postID: &postID, videoID: &videoID, policy: ParentPolicyStrict, wantErr: ErrBothParents},
		{name: "both keeps post under permissive", postID: &postID, videoID: &videoID, policy: ParentPolicyPermissive, wantPost: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent, err := ParentFromIDs(tt.postID, tt.videoID, tt.policy)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, parent.IsZero())
				return
			}

			require.NoError(t, err)
			if tt.wantPost {
				require.NotNil(t, parent.PostID())
				assert.Equal(t, postID, *parent.PostID())
				assert.Nil(t, parent.VideoID())
			} else {
				require.NotNil(t, parent.VideoID())
				assert.Equal(t, videoID, *parent.VideoID())
				assert.Nil(t, parent.PostID())
			}
		})
	}
}

func TestParentPolicyIsValid(t *testing.T) {
	assert.True(t, ParentPolicyStrict.IsValid())
	assert.True(t, ParentPolicyPermissive.IsValid())
	assert.False(t, ParentPolicy("lenient").IsValid())
	assert.False(t, ParentPolicy("").IsValid())
}
