package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"quillpad/app/cache"
	"quillpad/app/models"
	"quillpad/app/repositories"
	"quillpad/app/validation"

	"go.uber.org/zap"
)

// ImageOption selects what an update does with the post image.
type ImageOption string

const (
	ImageKeep    ImageOption = "keep"
	ImageReplace ImageOption = "url"
	ImageRemove  ImageOption = "remove"
)

// PostInput carries raw post fields as submitted by the admin.
type PostInput struct {
	Title    string
	Content  string
	Excerpt  string
	Tags     string
	ImageURL string
	// Date overrides the publication date (YYYY-MM-DD) when set.
	Date string
	// ImageOption is only consulted by UpdatePost. Empty means ImageReplace
	// when ImageURL is set and ImageKeep otherwise.
	ImageOption ImageOption
}

// PostService handles business logic for blog posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	tags        cache.TagCache
	log         *zap.Logger
}

// NewPostService creates a new PostService. tagCache and logger may be nil.
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, tagCache cache.TagCache, logger *zap.Logger) *PostService {
	if tagCache == nil {
		tagCache = cache.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		tags:        tagCache,
		log:         logger.Named("posts"),
	}
}

// CreatePost validates the input, normalises tags and stores a new post.
func (s *PostService) CreatePost(ctx context.Context, in PostInput) (*models.Post, error) {
	post := &models.Post{
		Title:    in.Title,
		Date:     in.Date,
		Content:  in.Content,
		Excerpt:  in.Excerpt,
		ImageURL: strings.TrimSpace(in.ImageURL),
		Tags:     in.Tags,
	}
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}
	post.Tags = validation.SanitizeTags(post.Tags)
	post.BeforeCreate()

	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	s.invalidateTags(ctx)
	s.log.Info("post created", zap.Int("id", post.ID), zap.String("title", post.Title))
	return post, nil
}

// GetPost retrieves a post by ID with its comments, newest first.
func (s *PostService) GetPost(ctx context.Context, id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	post.Comments = comments
	return post, nil
}

// UpdatePost validates the input and overwrites an existing post. Creation
// time and, unless overridden, the publication date are preserved.
func (s *PostService) UpdatePost(ctx context.Context, id int, in PostInput) (*models.Post, error) {
	image := strings.TrimSpace(in.ImageURL)
	option := in.ImageOption
	if option == "" {
		option = ImageKeep
		if image != "" {
			option = ImageReplace
		}
	}
	switch option {
	case ImageKeep, ImageReplace, ImageRemove:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidImageOption, option)
	}

	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Content = in.Content
	post.Excerpt = in.Excerpt
	post.Tags = in.Tags
	if in.Date != "" {
		post.Date = in.Date
	}
	switch option {
	case ImageReplace:
		post.ImageURL = image
	case ImageRemove:
		post.ImageURL = ""
	}
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}
	post.Tags = validation.SanitizeTags(post.Tags)
	post.Touch()

	if err := s.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}
	s.invalidateTags(ctx)
	s.log.Info("post updated", zap.Int("id", id))
	return post, nil
}

// DeletePost deletes a post and all its comments
func (s *PostService) DeletePost(ctx context.Context, id int) error {
	if _, err := s.postRepo.GetByID(id); err != nil {
		return err
	}

	removed, err := s.commentRepo.DeleteByPost(id)
	if err != nil {
		return fmt.Errorf("failed to delete comments of post %d: %w", id, err)
	}
	if err := s.postRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateTags(ctx)
	s.log.Info("post deleted", zap.Int("id", id), zap.Int("comments", removed))
	return nil
}

// ListTags returns every distinct tag in use, compared case-insensitively
// and sorted alphabetically. The first casing seen wins.
func (s *PostService) ListTags(ctx context.Context) ([]string, error) {
	if tags, ok, err := s.tags.Tags(ctx); err != nil {
		s.log.Warn("tag cache read failed", zap.Error(err))
	} else if ok {
		return tags, nil
	}

	posts, err := s.postRepo.All()
	if err != nil {
		return nil, err
	}
	sortPosts(posts, SortDateAsc)

	seen := make(map[string]struct{})
	tags := []string{}
	for _, post := range posts {
		for _, tag := range post.TagList() {
			key := strings.ToLower(tag)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.SliceStable(tags, func(i, j int) bool {
		return strings.ToLower(tags[i]) < strings.ToLower(tags[j])
	})

	if err := s.tags.SetTags(ctx, tags); err != nil {
		s.log.Warn("tag cache write failed", zap.Error(err))
	}
	return tags, nil
}

// PostsByTag returns the posts carrying tag, newest first.
func (s *PostService) PostsByTag(ctx context.Context, tag string) ([]*models.Post, error) {
	posts, err := s.postRepo.All()
	if err != nil {
		return nil, err
	}
	posts = filterByTag(posts, tag)
	sortPosts(posts, SortDateDesc)
	return posts, nil
}

func (s *PostService) invalidateTags(ctx context.Context) {
	if err := s.tags.Invalidate(ctx); err != nil {
		s.log.Warn("tag cache invalidation failed", zap.Error(err))
	}
}

func filterByTag(posts []*models.Post, tag string) []*models.Post {
	var out []*models.Post
	for _, post := range posts {
		if post.HasTag(tag) {
			out = append(out, post)
		}
	}
	return out
}
