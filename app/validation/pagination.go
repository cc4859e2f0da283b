package validation

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultPage is returned whenever a page value is rejected.
	DefaultPage = 1
	// MaxPage bounds page numbers regardless of how many posts exist.
	MaxPage = 10000
	// DefaultPerPage is the number of posts on a listing page.
	DefaultPerPage = 6
)

// ValidatePagination checks a page number and returns the page to use. On
// failure the returned page is always DefaultPage, never the rejected value.
//
// perPage is accepted but does not affect validity yet; MaxPage is a fixed
// bound, not derived from the result count.
func ValidatePagination(page, perPage int) (int, error) {
	err := validate.Var(page, "min=1,max=10000")
	if err == nil {
		return page, nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Tag() == "max" {
		return DefaultPage, &Error{Problems: []string{"Page number too large"}}
	}
	return DefaultPage, &Error{Problems: []string{"Invalid page number"}}
}

// ParsePage converts a raw query value into a page number. Surrounding
// whitespace is ignored. A value that is not an integer yields DefaultPage
// and an "Invalid page parameter" error.
func ParsePage(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	page, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		// Numeric but beyond int: range-check the sign instead of calling
		// it malformed.
		if strings.HasPrefix(s, "-") {
			return DefaultPage, &Error{Problems: []string{"Invalid page number"}}
		}
		return DefaultPage, &Error{Problems: []string{"Page number too large"}}
	}
	if err != nil {
		return DefaultPage, &Error{Problems: []string{"Invalid page parameter"}}
	}
	return page, nil
}

// PageFromQuery parses and validates a raw page value. An absent or blank
// value selects the first page.
func PageFromQuery(raw string, perPage int) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return DefaultPage, nil
	}
	page, err := ParsePage(raw)
	if err != nil {
		return page, err
	}
	return ValidatePagination(page, perPage)
}
