package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"quillpad/app/models"

	"go.uber.org/zap"
)

const (
	// Posts sharing a date are spread over 09:00 to 20:00.
	backfillStartMinute = 9 * 60
	backfillSpanMinutes = 11 * 60
	backfillNoon        = 12
)

// BackfillTimestamps assigns CreatedAt and UpdatedAt to stored posts derived
// from their publication date. It does nothing when every post already has
// both timestamps; otherwise every post is restamped so that posts sharing a
// date keep their ID order. It returns the number of posts updated.
func (s *PostService) BackfillTimestamps(ctx context.Context) (int, error) {
	posts, err := s.postRepo.All()
	if err != nil {
		return 0, err
	}

	missing := 0
	for _, post := range posts {
		if post.CreatedAt.IsZero() || post.UpdatedAt.IsZero() {
			missing++
		}
	}
	if missing == 0 {
		s.log.Info("all posts already have timestamps")
		return 0, nil
	}
	s.log.Info("backfilling post timestamps", zap.Int("missing", missing), zap.Int("posts", len(posts)))

	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date != posts[j].Date {
			return posts[i].Date < posts[j].Date
		}
		return posts[i].ID < posts[j].ID
	})

	byDate := make(map[string][]*models.Post)
	var dates []string
	for _, post := range posts {
		if _, ok := byDate[post.Date]; !ok {
			dates = append(dates, post.Date)
		}
		byDate[post.Date] = append(byDate[post.Date], post)
	}

	now := time.Now()
	updated := 0
	for _, date := range dates {
		group := byDate[date]
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			s.log.Warn("invalid post date, using current date", zap.String("date", date))
		}
		for i, post := range group {
			stamp := backfillTime(date, i, len(group), now)
			post.CreatedAt = stamp
			post.UpdatedAt = stamp
			if err := s.postRepo.Update(post); err != nil {
				return updated, fmt.Errorf("backfill post %d: %w", post.ID, err)
			}
			updated++
		}
	}

	s.log.Info("timestamps backfilled", zap.Int("updated", updated))
	return updated, nil
}

// backfillTime returns the timestamp for the index-th of count posts
// published on date. A lone post is placed at noon. Dates that do not parse
// use the calendar day of now.
func backfillTime(date string, index, count int, now time.Time) time.Time {
	day, err := time.ParseInLocation(models.DateLayout, date, now.Location())
	if err != nil {
		day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	minutes := backfillNoon * 60
	if count > 1 {
		minutes = int(backfillStartMinute + float64(index)*float64(backfillSpanMinutes)/float64(count))
	}
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, day.Location())
}
