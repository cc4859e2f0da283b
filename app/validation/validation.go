package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Length limits, counted in characters.
const (
	MaxTitleLen    = 200
	MaxContentLen  = 50000
	MaxExcerptLen  = 500
	MaxTagsLen     = 200
	MaxCommentLen  = 5000
	MaxAuthorLen   = 100
	MaxImageURLLen = 2000
)

// Error is the failure result of a validator. Problems keeps every violated
// rule in the order the fields were checked.
type Error struct {
	Problems []string
}

func (e *Error) Error() string {
	return strings.Join(e.Problems, "; ")
}

// Problems returns the individual messages carried by err, or nil when err
// is not a validation failure.
func Problems(err error) []string {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Problems
	}
	return nil
}

// Merge combines several validator results into one. Nil results are
// skipped; Merge returns nil when nothing failed.
func Merge(errs ...error) error {
	var problems []string
	for _, err := range errs {
		if err == nil {
			continue
		}
		if p := Problems(err); p != nil {
			problems = append(problems, p...)
			continue
		}
		problems = append(problems, err.Error())
	}
	if len(problems) == 0 {
		return nil
	}
	return &Error{Problems: problems}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("httpurl", httpScheme)
	return v
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func httpScheme(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// fieldMessages maps a struct field and the failing validator tag to the
// message shown to the user.
var fieldMessages = map[string]map[string]string{
	"Title": {
		"notblank": "Title is required",
		"max":      "Title must be 200 characters or less",
	},
	"Content": {
		"notblank": "Content is required",
		"max":      "Content must be 50,000 characters or less",
	},
	"Excerpt": {
		"notblank": "Excerpt is required",
		"max":      "Excerpt must be 500 characters or less",
	},
	"Tags": {
		"max": "Tags must be 200 characters or less",
	},
	"Text": {
		"notblank": "Comment cannot be empty",
		"max":      "Comment must be 5,000 characters or less",
	},
	"Author": {
		"max": "Author name must be 100 characters or less",
	},
}

// check runs struct validation and converts the result into an *Error.
// validator stops at the first failing tag of each field, so a blank field
// never also reports its length.
func check(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &Error{Problems: []string{err.Error()}}
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := fieldMessages[fe.StructField()][fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		problems = append(problems, msg)
	}
	return &Error{Problems: problems}
}
