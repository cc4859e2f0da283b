package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

type postFields struct {
	Title   string `validate:"notblank,max=200"`
	Content string `validate:"notblank,max=50000"`
	Excerpt string `validate:"notblank,max=500"`
	Tags    string `validate:"max=200"`
}

type commentFields struct {
	Text   string `validate:"notblank,max=5000"`
	Author string `validate:"max=100"`
}

// ValidatePost checks the fields of a blog post. Title, content and excerpt
// are required; tags are optional and only length-checked. Every violation
// is reported, not just the first.
func ValidatePost(title, content, excerpt, tags string) error {
	return check(postFields{
		Title:   title,
		Content: content,
		Excerpt: excerpt,
		Tags:    tags,
	})
}

// ValidateComment checks a comment body and its optional author name. A
// blank author is allowed and means anonymous.
func ValidateComment(text, author string) error {
	return check(commentFields{
		Text:   text,
		Author: author,
	})
}

// ValidateImageURL accepts a blank URL (the field is optional). Otherwise the
// URL must use http:// or https:// and stay within MaxImageURLLen.
func ValidateImageURL(url string) error {
	if strings.TrimSpace(url) == "" {
		return nil
	}
	err := validate.Var(url, "httpurl,max=2000")
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Tag() == "max" {
		return &Error{Problems: []string{"Image URL is too long"}}
	}
	return &Error{Problems: []string{"Image URL must start with http:// or https://"}}
}
