package services

import (
	"context"
	"sort"
	"strings"

	"quillpad/app/models"
	"quillpad/app/validation"

	"go.uber.org/zap"
)

// SortOrder selects the ordering of a post listing.
type SortOrder string

const (
	SortDateDesc  SortOrder = "date_desc"
	SortDateAsc   SortOrder = "date_asc"
	SortTitleAsc  SortOrder = "title_asc"
	SortTitleDesc SortOrder = "title_desc"
)

// ParseSort maps a raw sort parameter to a SortOrder. Unknown values fall
// back to SortDateDesc.
func ParseSort(raw string) SortOrder {
	switch s := SortOrder(strings.ToLower(strings.TrimSpace(raw))); s {
	case SortDateAsc, SortTitleAsc, SortTitleDesc:
		return s
	default:
		return SortDateDesc
	}
}

// ListQuery describes one page of the post listing.
type ListQuery struct {
	Page    int
	PerPage int
	Sort    SortOrder
	// Tag restricts the listing to posts with this tag when non-empty.
	Tag string
}

// Page is one page of posts plus the numbers needed to render pagination.
type Page struct {
	Posts      []*models.Post
	Page       int
	PerPage    int
	TotalPosts int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	Sort       SortOrder
	Tag        string
	// Notice holds the validation message when the requested page was
	// rejected and replaced by the first page.
	Notice string
}

// ListPosts returns a sorted, optionally tag-filtered page of posts. Pages
// past the end are clamped to the last page.
func (s *PostService) ListPosts(ctx context.Context, q ListQuery) (*Page, error) {
	perPage := q.PerPage
	if perPage < 1 {
		perPage = validation.DefaultPerPage
	}
	order := ParseSort(string(q.Sort))

	page, err := validation.ValidatePagination(q.Page, perPage)
	notice := ""
	if err != nil {
		notice = err.Error()
		s.log.Debug("page rejected", zap.Int("page", q.Page), zap.String("reason", notice))
	}

	var (
		posts []*models.Post
		total int
	)
	if q.Tag == "" {
		if total, err = s.postRepo.Count(); err != nil {
			return nil, err
		}
		if total > 0 {
			if posts, err = s.postRepo.All(); err != nil {
				return nil, err
			}
		}
	} else {
		if posts, err = s.postRepo.All(); err != nil {
			return nil, err
		}
		posts = filterByTag(posts, q.Tag)
		total = len(posts)
	}
	sortPosts(posts, order)

	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	pagePosts := []*models.Post{}
	start := (page - 1) * perPage
	if start < len(posts) {
		end := start + perPage
		if end > len(posts) {
			end = len(posts)
		}
		pagePosts = posts[start:end]
	}

	return &Page{
		Posts:      pagePosts,
		Page:       page,
		PerPage:    perPage,
		TotalPosts: total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
		Sort:       order,
		Tag:        q.Tag,
		Notice:     notice,
	}, nil
}

// sortPosts orders posts in place. Date orderings compare the publication
// date, then the creation time, then the ID.
func sortPosts(posts []*models.Post, order SortOrder) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		switch order {
		case SortTitleAsc, SortTitleDesc:
			ta, tb := strings.ToLower(a.Title), strings.ToLower(b.Title)
			if ta != tb {
				if order == SortTitleAsc {
					return ta < tb
				}
				return ta > tb
			}
			return a.ID < b.ID
		case SortDateAsc:
			if c := compareDates(a, b); c != 0 {
				return c < 0
			}
			return a.ID < b.ID
		default:
			if c := compareDates(a, b); c != 0 {
				return c > 0
			}
			return a.ID > b.ID
		}
	})
}

func compareDates(a, b *models.Post) int {
	if a.Date != b.Date {
		if a.Date < b.Date {
			return -1
		}
		return 1
	}
	switch {
	case a.CreatedAt.Before(b.CreatedAt):
		return -1
	case a.CreatedAt.After(b.CreatedAt):
		return 1
	}
	return 0
}
