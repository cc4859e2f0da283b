package models

import (
	"errors"
	"strings"
	"time"

	"quillpad/app/validation"
)

// AnonymousAuthor is shown for comments left without a name.
const AnonymousAuthor = "Anonymous"

// Validate checks the comment text and author.
func (c *Comment) Validate() error {
	return validation.ValidateComment(c.Text, c.Author)
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if c.Date == "" {
		c.Date = c.CreatedAt.Format("2006-01-02 15:04")
	}
	c.Author = strings.TrimSpace(c.Author)
	if c.Author == "" {
		c.Author = AnonymousAuthor
	}
}

// SetPost sets the parent post and updates the PostID
func (c *Comment) SetPost(post *Post) error {
	if post == nil {
		return errors.New("post cannot be nil")
	}

	c.Post = post
	c.PostID = post.ID
	return nil
}

// DisplayAuthor returns the author name, or AnonymousAuthor when none was
// given. Comments stored before author defaulting may have a blank Author.
func (c *Comment) DisplayAuthor() string {
	if a := strings.TrimSpace(c.Author); a != "" {
		return a
	}
	return AnonymousAuthor
}
