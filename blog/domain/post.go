package domain

import (
	"context"
	"time"
)

// DefaultCategory is applied when a post is created without one.
const DefaultCategory = "General"

// Post represents a single blog post.
// Content is markdown-like text; ID and CreatedAt are assigned by the store
// and are immutable once set.
type Post struct {
	ID        int
	Title     string
	Content   string
	Excerpt   string
	ImageURL  string
	Category  string
	Published bool
	CreatedAt time.Time
}

// NewPost carries the normalized fields for a create. Identity and creation
// timestamp are never part of it.
type NewPost struct {
	Title     string
	Content   string
	Excerpt   string
	ImageURL  string
	Category  string
	Published bool
}

// PostPatch carries a partial update. Nil fields are left untouched.
type PostPatch struct {
	Title     *string
	Content   *string
	Excerpt   *string
	ImageURL  *string
	Category  *string
	Published *bool
}

// IsEmpty reports whether the patch modifies nothing.
func (p PostPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Excerpt == nil &&
		p.ImageURL == nil && p.Category == nil && p.Published == nil
}

// PostRepository is the data-access contract for blog posts.
//
// Reads never fail: when the store is unreachable or a query errors, they
// fall back to the fixed sample set. Writes never fall back; they return a
// *DatabaseError describing why persistence did not happen.
type PostRepository interface {
	// List returns all posts, newest first. Ties on the creation timestamp
	// are broken by descending identity so the order is deterministic.
	List(ctx context.Context) []Post

	// GetByID returns the post with the given identity, or nil when it is
	// absent from both the store and the sample set.
	GetByID(ctx context.Context, id int) *Post

	// Create inserts a new post and returns it with its store-assigned
	// identity and creation timestamp.
	Create(ctx context.Context, input NewPost) (*Post, error)

	// Update applies the supplied fields to an existing post and returns
	// the updated row.
	Update(ctx context.Context, id int, patch PostPatch) (*Post, error)

	// Delete removes a post and returns the deleted row for confirmation.
	Delete(ctx context.Context, id int) (*Post, error)
}
