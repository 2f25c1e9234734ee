package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string        { return &s }
func timePtr(t time.Time) *time.Time { return &t }

func TestPostVisible(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		post    *Post
		visible bool
	}{
		{
			name: "image and past publication time",
			post: &Post{
				Image:       strPtr("https://picsum.photos/id/1/800/400"),
				PublishedAt: timePtr(now.Add(-24 * time.Hour)),
			},
			visible: true,
		},
		{
			name: "published exactly now",
			post: &Post{
				Image:       strPtr("image.jpg"),
				PublishedAt: timePtr(now),
			},
			visible: true,
		},
		{
			name: "missing image",
			post: &Post{
				Image:       nil,
				PublishedAt: timePtr(now.Add(-24 * time.Hour)),
			},
			visible: false,
		},
		{
			name: "unpublished",
			post: &Post{
				Image:       strPtr("image.jpg"),
				PublishedAt: nil,
			},
			visible: false,
		},
		{
			name: "scheduled in the future",
			post: &Post{
				Image:       strPtr("image.jpg"),
				PublishedAt: timePtr(now.Add(24 * time.Hour)),
			},
			visible: false,
		},
		{
			name:    "neither image nor publication time",
			post:    &Post{},
			visible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, tt.post.Visible(now))
		})
	}
}

func TestPostValidation(t *testing.T) {
	tests := []struct {
		name    string
		post    *Post
		wantErr bool
	}{
		{
			name: "valid post",
			post: &Post{
				ID:        1,
				Slug:      "valid-post",
				Title:     "Valid Title",
				AuthorID:  1,
				CreatedAt: time.Now(),
			},
			wantErr: false,
		},
		{
			name: "missing slug",
			post: &Post{
				ID:        1,
				Title:     "Valid Title",
				AuthorID:  1,
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing title",
			post: &Post{
				ID:        1,
				Slug:      "valid-post",
				AuthorID:  1,
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing author",
			post: &Post{
				ID:        1,
				Slug:      "valid-post",
				Title:     "Valid Title",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "zero creation time",
			post: &Post{
				ID:       1,
				Slug:     "valid-post",
				Title:    "Valid Title",
				AuthorID: 1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostBeforeCreate(t *testing.T) {
	post := &Post{
		Slug:     "test-post",
		Title:    "Test Post",
		AuthorID: 1,
	}

	assert.True(t, post.CreatedAt.IsZero())
	post.BeforeCreate()
	assert.False(t, post.CreatedAt.IsZero())
}

func TestPostAddComment(t *testing.T) {
	post := &Post{ID: 7, Slug: "test-post", Title: "Test Post", AuthorID: 1}

	t.Run("add comment", func(t *testing.T) {
		comment := &Comment{Name: "John Doe", Body: "Test Comment"}

		err := post.AddComment(comment)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(post.Comments))
		assert.Equal(t, post.ID, comment.PostID)
	})

	t.Run("add nil comment", func(t *testing.T) {
		err := post.AddComment(nil)
		assert.Error(t, err)
	})
}
