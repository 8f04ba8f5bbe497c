package posts

import (
	"testing"

	"Inkwell/internal/core/users"

	"github.com/stretchr/testify/assert"
)

func policyTestUsers() (author, audience, outsider *users.User) {
	author = &users.User{ID: 1, Username: "author"}
	audience = &users.User{ID: 2, Username: "audience"}
	outsider = &users.User{ID: 3, Username: "outsider"}
	return author, audience, outsider
}

func TestCanView(t *testing.T) {
	author, audience, outsider := policyTestUsers()

	publicPost := &Post{ID: 10, AuthorID: author.ID, Visibility: Public()}
	restrictedToAudience := &Post{ID: 11, AuthorID: author.ID, Visibility: RestrictedTo(audience.ID)}
	restrictedToAuthor := &Post{ID: 12, AuthorID: author.ID, Visibility: RestrictedTo(author.ID)}

	tests := []struct {
		name   string
		viewer *users.User
		post   *Post
		want   bool
	}{
		{"anonymous reads public", nil, publicPost, true},
		{"anonymous blocked from restricted", nil, restrictedToAudience, false},
		{"author reads own public", author, publicPost, true},
		{"author reads own post restricted to someone else", author, restrictedToAudience, true},
		{"audience reads post restricted to them", audience, restrictedToAudience, true},
		{"outsider reads public", outsider, publicPost, true},
		{"outsider blocked from restricted", outsider, restrictedToAudience, false},
		{"self-restricted post stays hidden from others", audience, restrictedToAuthor, false},
		{"self-restricted post readable by author", author, restrictedToAuthor, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanView(tt.viewer, tt.post))
		})
	}
}

func TestCanMutatePost(t *testing.T) {
	author, audience, outsider := policyTestUsers()

	// The audience grant is read-only: being able to see a restricted post
	// must never allow editing it.
	restricted := &Post{ID: 11, AuthorID: author.ID, Visibility: RestrictedTo(audience.ID)}
	public := &Post{ID: 10, AuthorID: author.ID, Visibility: Public()}

	tests := []struct {
		name   string
		viewer *users.User
		post   *Post
		want   bool
	}{
		{"author may mutate", author, public, true},
		{"author may mutate restricted", author, restricted, true},
		{"audience may not mutate", audience, restricted, false},
		{"outsider may not mutate", outsider, public, false},
		{"anonymous may not mutate", nil, public, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutatePost(tt.viewer, tt.post))
		})
	}
}

func TestCanCreateComment(t *testing.T) {
	author, audience, outsider := policyTestUsers()

	publicPost := &Post{ID: 10, AuthorID: author.ID, Visibility: Public()}
	restricted := &Post{ID: 11, AuthorID: author.ID, Visibility: RestrictedTo(audience.ID)}

	tests := []struct {
		name   string
		viewer *users.User
		post   *Post
		want   bool
	}{
		{"anonymous may comment on public", nil, publicPost, true},
		{"anonymous may not comment on restricted", nil, restricted, false},
		{"audience may comment on restricted", audience, restricted, true},
		{"outsider may not comment on restricted", outsider, restricted, false},
		{"author may comment on own restricted", author, restricted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCreateComment(tt.viewer, tt.post))
		})
	}
}
