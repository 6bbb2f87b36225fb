package shared

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPageNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Page
		want Page
	}{
		{name: "zero value gets defaults", in: Page{}, want: Page{Limit: 20, Offset: 0}},
		{name: "negative limit gets default", in: Page{Limit: -5, Offset: 10}, want: Page{Limit: 20, Offset: 10}},
		{name: "negative offset gets default", in: Page{Limit: 5, Offset: -1}, want: Page{Limit: 5, Offset: 0}},
		{name: "valid page kept as is", in: Page{Limit: 50, Offset: 100}, want: Page{Limit: 50, Offset: 100}},
		{name: "no upper bound on limit", in: Page{Limit: 10000}, want: Page{Limit: 10000, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestActorCanManage(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	tests := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{name: "owner manages own content", actor: Actor{ID: owner, Role: RoleAuthor}, want: true},
		{name: "other author cannot", actor: Actor{ID: other, Role: RoleAuthor}, want: false},
		{name: "admin manages anything", actor: Actor{ID: other, Role: RoleAdmin}, want: true},
		{name: "plain user cannot manage others", actor: Actor{ID: other, Role: RoleUser}, want: false},
		{name: "plain user manages own", actor: Actor{ID: owner, Role: RoleUser}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.CanManage(owner))
		})
	}
}

func TestActorIsPublisher(t *testing.T) {
	assert.False(t, Actor{Role: RoleUser}.IsPublisher())
	assert.True(t, Actor{Role: RoleAuthor}.IsPublisher())
	assert.True(t, Actor{Role: RoleAdmin}.IsPublisher())
	assert.False(t, Actor{Role: "moderator"}.IsPublisher())
}
