package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostRequestValidate(t *testing.T) {
	valid := CreatePostRequest{
		Title:    "Hello",
		Content:  "body",
		Category: "tech",
		Tags:     []string{"go"},
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("missing title rejected", func(t *testing.T) {
		r := valid
		r.Title = ""
		err := r.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("missing content rejected", func(t *testing.T) {
		r := valid
		r.Content = ""
		assert.Error(t, r.Validate())
	})

	t.Run("missing category rejected", func(t *testing.T) {
		r := valid
		r.Category = ""
		assert.Error(t, r.Validate())
	})

	t.Run("overlong title rejected", func(t *testing.T) {
		r := valid
		r.Title = strings.Repeat("x", 256)
		assert.Error(t, r.Validate())
	})

	t.Run("overlong tag rejected", func(t *testing.T) {
		r := valid
		r.Tags = []string{strings.Repeat("x", 51)}
		assert.Error(t, r.Validate())
	})
}

func TestUpdatePostRequestValidate(t *testing.T) {
	t.Run("empty patch is valid", func(t *testing.T) {
		assert.NoError(t, UpdatePostRequest{}.Validate())
		assert.True(t, UpdatePostRequest{}.Params().IsEmpty())
	})

	t.Run("blank title rejected", func(t *testing.T) {
		blank := ""
		assert.Error(t, UpdatePostRequest{Title: &blank}.Validate())
	})

	t.Run("set fields carry through to params", func(t *testing.T) {
		title := "new"
		published := true
		tags := []string{"a", "b"}

		params := UpdatePostRequest{Title: &title, Published: &published, Tags: &tags}.Params()

		require.NotNil(t, params.Title)
		assert.Equal(t, "new", *params.Title)
		require.NotNil(t, params.Published)
		assert.True(t, *params.Published)
		require.NotNil(t, params.Tags)
		assert.Equal(t, tags, *params.Tags)
		assert.Nil(t, params.Content)
		assert.False(t, params.IsEmpty())
	})
}
