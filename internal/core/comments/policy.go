package comments

import (
	"Inkwell/internal/core/users"
)

// CanDelete reports whether the viewer may delete the comment.
// Comments carry no author of their own, so moderation falls to the parent
// post's author: only they may remove comments under their post. Whoever
// submitted the comment has no standing.
func CanDelete(viewer *users.User, comment *CommentDetail) bool {
	return viewer != nil && viewer.ID == comment.PostAuthorID
}
