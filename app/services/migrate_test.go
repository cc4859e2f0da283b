package services

import (
	"context"
	"testing"
	"time"

	"quillpad/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackfillTime(t *testing.T) {
	now := time.Date(2025, 6, 7, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		date  string
		index int
		count int
		want  time.Time
	}{
		{"single post at noon", "2024-01-01", 0, 1, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		{"first of several at nine", "2024-01-01", 0, 3, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{"second of three", "2024-01-01", 1, 3, time.Date(2024, 1, 1, 12, 40, 0, 0, time.UTC)},
		{"last of three", "2024-01-01", 2, 3, time.Date(2024, 1, 1, 16, 20, 0, 0, time.UTC)},
		{"minutes truncate", "2024-01-01", 1, 7, time.Date(2024, 1, 1, 10, 34, 0, 0, time.UTC)},
		{"invalid date uses today", "01/02/2024", 0, 1, time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, backfillTime(tt.date, tt.index, tt.count, now))
		})
	}
}

func TestBackfillTimestamps(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestServices()

	for _, date := range []string{"2024-02-01", "2024-02-02", "2024-02-01", "2024-02-01"} {
		require.NoError(t, svc.postRepo.Create(&models.Post{Title: "t", Content: "c", Excerpt: "e", Date: date}))
	}

	updated, err := svc.BackfillTimestamps(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, updated)

	want := map[int]time.Time{
		1: time.Date(2024, 2, 1, 9, 0, 0, 0, time.Local),
		2: time.Date(2024, 2, 2, 12, 0, 0, 0, time.Local),
		3: time.Date(2024, 2, 1, 12, 40, 0, 0, time.Local),
		4: time.Date(2024, 2, 1, 16, 20, 0, 0, time.Local),
	}
	for id, ts := range want {
		post, err := svc.postRepo.GetByID(id)
		require.NoError(t, err)
		assert.True(t, ts.Equal(post.CreatedAt), "post %d created %s, want %s", id, post.CreatedAt, ts)
		assert.True(t, post.CreatedAt.Equal(post.UpdatedAt))
	}

	updated, err = svc.BackfillTimestamps(ctx)
	require.NoError(t, err)
	assert.Zero(t, updated)
}
