package persistence

import (
	"database/sql"
	"time"

	"github.com/dfryer1193/autoblog/blog/domain"
)

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// postRow mirrors the blog_posts columns, keeping nullable-column handling
// out of the domain type.
type postRow struct {
	ID        int
	Title     string
	Content   string
	Excerpt   string
	ImageURL  sql.NullString
	Category  string
	Published sql.NullBool
	CreatedAt time.Time
}

func (r *postRow) scan(s rowScanner) error {
	return s.Scan(
		&r.ID,
		&r.Title,
		&r.Content,
		&r.Excerpt,
		&r.ImageURL,
		&r.Category,
		&r.Published,
		&r.CreatedAt,
	)
}

func (r *postRow) toDomain() *domain.Post {
	post := &domain.Post{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		Excerpt:   r.Excerpt,
		Category:  r.Category,
		Published: true,
		CreatedAt: r.CreatedAt,
	}

	if r.ImageURL.Valid {
		post.ImageURL = r.ImageURL.String
	}
	if r.Published.Valid {
		post.Published = r.Published.Bool
	}

	return post
}
