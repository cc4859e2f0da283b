package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostValidation(t *testing.T) {
	tests := []struct {
		name    string
		post    *Post
		wantErr bool
	}{
		{
			name: "valid post",
			post: &Post{
				Title:   "Valid Title",
				Content: "This is valid content",
				Excerpt: "Short excerpt",
				Tags:    "go, testing",
			},
		},
		{
			name: "valid post with image",
			post: &Post{
				Title:    "Valid Title",
				Content:  "Content",
				Excerpt:  "Excerpt",
				ImageURL: "https://example.com/cover.png",
			},
		},
		{
			name: "missing excerpt",
			post: &Post{
				Title:   "Valid Title",
				Content: "Content",
			},
			wantErr: true,
		},
		{
			name: "title too long",
			post: &Post{
				Title:   strings.Repeat("a", 201),
				Content: "Content",
				Excerpt: "Excerpt",
			},
			wantErr: true,
		},
		{
			name: "bad image scheme",
			post: &Post{
				Title:    "Valid Title",
				Content:  "Content",
				Excerpt:  "Excerpt",
				ImageURL: "ftp://example.com/cover.png",
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
		ID:      1,
		Title:   "Test Post",
		Content: "Test Content",
	}

	assert.True(t, post.CreatedAt.IsZero())
	post.BeforeCreate()
	assert.False(t, post.CreatedAt.IsZero())
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	assert.Equal(t, post.CreatedAt.Format(DateLayout), post.Date)

	t.Run("keeps explicit date", func(t *testing.T) {
		p := &Post{Date: "2024-12-15", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
		p.BeforeCreate()
		assert.Equal(t, "2024-12-15", p.Date)
	})
}

func TestPostTags(t *testing.T) {
	post := &Post{Tags: "Go, testing, go"}

	assert.Equal(t, []string{"Go", "testing"}, post.TagList())
	assert.True(t, post.HasTag("go"))
	assert.True(t, post.HasTag(" TESTING "))
	assert.False(t, post.HasTag("test"))
	assert.False(t, post.HasTag(""))
}
