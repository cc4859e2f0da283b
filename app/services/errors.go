package services

import (
	"errors"

	"quillpad/app/repositories"
	"quillpad/app/validation"
)

var (
	// ErrNotFound is returned when a post or comment does not exist.
	ErrNotFound = repositories.ErrNotFound
	// ErrInvalidImageOption is returned for an unknown ImageOption.
	ErrInvalidImageOption = errors.New("invalid image option")
)

// IsValidation reports whether err was caused by rejected user input, in
// which case err.Error() is safe to show to the user.
func IsValidation(err error) bool {
	var verr *validation.Error
	return errors.As(err, &verr)
}
