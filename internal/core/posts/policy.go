package posts

import (
	"Inkwell/internal/core/users"
)

// Authorization predicates for posts. Pure functions over the viewer and the
// post row: callers fetch, then ask, then act. A nil viewer is an anonymous
// visitor.
//
// The listing query applies the CanView rule directly in SQL (see the
// postgres repository); single-row fetches apply these predicates after the
// read. Both paths must agree.

// CanView reports whether the viewer may read the post.
// Public posts are readable by everyone. Restricted posts are readable by
// the audience user and by the author; the two grants are checked
// independently because the stored audience id is not guaranteed to be the
// author's.
func CanView(viewer *users.User, post *Post) bool {
	if post.Visibility.IsPublic() {
		return true
	}
	if viewer == nil {
		return false
	}
	if post.Visibility.IsRestrictedTo(viewer.ID) {
		return true
	}
	return viewer.ID == post.AuthorID
}

// CanMutatePost reports whether the viewer may edit or delete the post.
// Only the author may; a restricted audience grants read access, never write.
func CanMutatePost(viewer *users.User, post *Post) bool {
	return viewer != nil && viewer.ID == post.AuthorID
}

// CanCreateComment reports whether the viewer may comment on the post.
// Anyone who can read a post may comment on it, anonymous visitors included.
func CanCreateComment(viewer *users.User, post *Post) bool {
	return CanView(viewer, post)
}
