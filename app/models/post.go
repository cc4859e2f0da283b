package models

import (
	"strings"
	"time"

	"quillpad/app/validation"
)

// Validate checks the post's user supplied fields.
func (p *Post) Validate() error {
	return validation.Merge(
		validation.ValidatePost(p.Title, p.Content, p.Excerpt, p.Tags),
		validation.ValidateImageURL(p.ImageURL),
	)
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	if p.Date == "" {
		p.Date = p.CreatedAt.Format(DateLayout)
	}
}

// Touch records a modification.
func (p *Post) Touch() {
	p.UpdatedAt = time.Now()
}

// TagList returns the post's tags in display order.
func (p *Post) TagList() []string {
	return validation.SplitTags(p.Tags)
}

// HasTag reports whether the post carries tag, ignoring case.
func (p *Post) HasTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, t := range p.TagList() {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
