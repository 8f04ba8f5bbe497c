package comments

import "errors"

var (
	// ErrCommentNotFound indicates the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrPostNotFound indicates the parent post doesn't exist
	ErrPostNotFound = errors.New("parent post not found")

	// ErrTitleRequired indicates the comment title is empty
	ErrTitleRequired = errors.New("comment title is required")

	// ErrNotAuthorized indicates the viewer isn't the parent post's author
	ErrNotAuthorized = errors.New("not authorized")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrPostNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTitleRequired)
}
