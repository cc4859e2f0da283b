package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quillpad/app/models"
	"quillpad/app/repositories"

	"go.uber.org/zap"
)

// ErrCommentPostMismatch is returned when a comment is addressed through a
// post it does not belong to.
var ErrCommentPostMismatch = errors.New("comment does not belong to specified post")

// CommentInput carries raw comment fields as submitted by a reader.
type CommentInput struct {
	Author string
	Text   string
}

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	log         *zap.Logger
}

// NewCommentService creates a new CommentService. logger may be nil.
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, logger *zap.Logger) *CommentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		log:         logger.Named("comments"),
	}
}

// AddComment validates the input and stores a comment on postID. Limits
// apply to the text as submitted; it is trimmed only for storage. A blank
// author is recorded as models.AnonymousAuthor.
func (s *CommentService) AddComment(ctx context.Context, postID int, in CommentInput) (*models.Comment, error) {
	comment := &models.Comment{
		Author: in.Author,
		Text:   in.Text,
	}
	if err := comment.Validate(); err != nil {
		return nil, fmt.Errorf("invalid comment: %w", err)
	}

	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, fmt.Errorf("post %d: %w", postID, err)
	}
	if err := comment.SetPost(post); err != nil {
		return nil, err
	}

	comment.Text = strings.TrimSpace(comment.Text)
	comment.BeforeCreate()
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	s.log.Info("comment added", zap.Int("post", postID), zap.Int("id", comment.ID), zap.String("author", comment.Author))
	return comment, nil
}

// GetComment retrieves a comment by ID
func (s *CommentService) GetComment(ctx context.Context, id int) (*models.Comment, error) {
	return s.commentRepo.GetByID(id)
}

// ListPostComments retrieves all comments for a post, newest first.
func (s *CommentService) ListPostComments(ctx context.Context, postID int) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, fmt.Errorf("post %d: %w", postID, err)
	}
	return s.commentRepo.ListByPost(postID)
}

// UpdateComment replaces the text and author of an existing comment on
// postID. Creation time and the parent post are preserved.
func (s *CommentService) UpdateComment(ctx context.Context, postID, id int, in CommentInput) (*models.Comment, error) {
	if err := (&models.Comment{Text: in.Text, Author: in.Author}).Validate(); err != nil {
		return nil, fmt.Errorf("invalid comment: %w", err)
	}

	existing, err := s.commentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing.PostID != postID {
		return nil, ErrCommentPostMismatch
	}

	existing.Text = strings.TrimSpace(in.Text)
	existing.Author = strings.TrimSpace(in.Author)
	if existing.Author == "" {
		existing.Author = models.AnonymousAuthor
	}
	if err := s.commentRepo.Update(existing); err != nil {
		return nil, fmt.Errorf("update comment %d: %w", id, err)
	}
	s.log.Info("comment updated", zap.Int("post", postID), zap.Int("id", id))
	return existing, nil
}

// DeleteComment deletes a comment
func (s *CommentService) DeleteComment(ctx context.Context, id int) error {
	if _, err := s.commentRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.commentRepo.Delete(id); err != nil {
		return err
	}
	s.log.Info("comment deleted", zap.Int("id", id))
	return nil
}
