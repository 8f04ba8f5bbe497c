package posts

import (
	"database/sql"
	"strconv"
	"strings"
)

// PublicToken is the form value that marks a post as public. It mirrors the
// NULL sentinel stored in the visibility column.
const PublicToken = "NULL"

// Visibility is the audience of a post: either public or restricted to
// exactly one user id. The zero value is public.
//
// The restricted id is conventionally the author's own id (the forms offer
// every registered user), but nothing cross-validates that; the policy
// checks in policy.go treat audience and authorship as two separate grants.
type Visibility struct {
	audience   int64
	restricted bool
}

// Public returns the visibility readable by everyone, anonymous visitors included
func Public() Visibility {
	return Visibility{}
}

// RestrictedTo returns a visibility readable only by the given user and the post's author
func RestrictedTo(userID int64) Visibility {
	return Visibility{audience: userID, restricted: true}
}

// ParseVisibility normalizes a submitted form value into a Visibility.
// The literal "NULL" token (surrounding whitespace ignored) means public;
// any other value must be a positive decimal user id.
func ParseVisibility(input string) (Visibility, error) {
	token := strings.TrimSpace(input)
	if token == PublicToken {
		return Public(), nil
	}

	id, err := strconv.ParseInt(token, 10, 64)
	if err != nil || id <= 0 {
		return Visibility{}, NewValidationError("visibility", "Visibility must be NULL or a user id.")
	}
	return RestrictedTo(id), nil
}

// IsPublic reports whether the post is readable by everyone
func (v Visibility) IsPublic() bool {
	return !v.restricted
}

// IsRestrictedTo reports whether the post's audience is exactly the given user
func (v Visibility) IsRestrictedTo(userID int64) bool {
	return v.restricted && v.audience == userID
}

// Audience returns the user id a restricted post is scoped to.
// ok is false for public posts.
func (v Visibility) Audience() (id int64, ok bool) {
	return v.audience, v.restricted
}

// String renders the form token: "NULL" for public, the audience id otherwise
func (v Visibility) String() string {
	if !v.restricted {
		return PublicToken
	}
	return strconv.FormatInt(v.audience, 10)
}

// NullInt64 converts the visibility to its column representation
func (v Visibility) NullInt64() sql.NullInt64 {
	if !v.restricted {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: v.audience, Valid: true}
}

// VisibilityFromNull converts a scanned visibility column back into a Visibility
func VisibilityFromNull(n sql.NullInt64) Visibility {
	if !n.Valid {
		return Public()
	}
	return RestrictedTo(n.Int64)
}
