// Package forms turns submitted form and query values into service inputs.
// Values are read as submitted; validation happens in the services.
package forms

import (
	"net/url"
	"strings"

	"quillpad/app/services"
	"quillpad/app/validation"
)

// Form and query field names.
const (
	FieldTitle       = "title"
	FieldContent     = "content"
	FieldExcerpt     = "excerpt"
	FieldTags        = "tags"
	FieldImageURL    = "image_url"
	FieldImageOption = "image_option"
	FieldDate        = "date"
	FieldAuthor      = "author"
	FieldComment     = "comment_text"
	FieldPage        = "page"
	FieldSort        = "sort"
	FieldTag         = "tag"
)

// PostInputFromValues reads a post form.
func PostInputFromValues(v url.Values) services.PostInput {
	return services.PostInput{
		Title:       v.Get(FieldTitle),
		Content:     v.Get(FieldContent),
		Excerpt:     v.Get(FieldExcerpt),
		Tags:        v.Get(FieldTags),
		ImageURL:    v.Get(FieldImageURL),
		Date:        strings.TrimSpace(v.Get(FieldDate)),
		ImageOption: services.ImageOption(strings.ToLower(strings.TrimSpace(v.Get(FieldImageOption)))),
	}
}

// CommentInputFromValues reads a comment form.
func CommentInputFromValues(v url.Values) services.CommentInput {
	return services.CommentInput{
		Author: v.Get(FieldAuthor),
		Text:   v.Get(FieldComment),
	}
}

// ListQuery is a parsed listing request. Notice is set when the page value
// was rejected; Query.Page then holds the first page.
type ListQuery struct {
	Query  services.ListQuery
	Notice string
}

// ListQueryFromValues reads the page, sort and tag query parameters.
func ListQueryFromValues(v url.Values, perPage int) ListQuery {
	page, err := validation.PageFromQuery(v.Get(FieldPage), perPage)
	lq := ListQuery{
		Query: services.ListQuery{
			Page:    page,
			PerPage: perPage,
			Sort:    services.ParseSort(v.Get(FieldSort)),
			Tag:     strings.TrimSpace(v.Get(FieldTag)),
		},
	}
	if err != nil {
		lq.Notice = err.Error()
	}
	return lq
}
