package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dfryer1193/autoblog/blog/domain"
	"github.com/dfryer1193/autoblog/shared/db"
	"github.com/rs/zerolog/log"
)

var _ domain.PostRepository = (*PostgresPostRepository)(nil)

// PostgresPostRepository implements domain.PostRepository against the
// blog_posts table. Every operation asks the connection manager for the
// handle; the repository never caches it across calls. Reads degrade to the
// fixed sample set, writes surface typed errors.
type PostgresPostRepository struct {
	manager *db.ConnectionManager
}

// NewPostRepository creates a repository routed through the given
// connection manager.
func NewPostRepository(manager *db.ConnectionManager) *PostgresPostRepository {
	return &PostgresPostRepository{manager: manager}
}

const postColumns = `id, title, content, excerpt, image_url, category, published, created_at`

// Equal timestamps fall back to descending identity so repeated calls
// always yield the same order.
const listPostsQuery = `
	SELECT ` + postColumns + `
	FROM blog_posts
	ORDER BY created_at DESC, id DESC
`

const getPostQuery = `
	SELECT ` + postColumns + `
	FROM blog_posts
	WHERE id = $1
`

const insertPostQuery = `
	INSERT INTO blog_posts (title, content, excerpt, image_url, category, published)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + postColumns

const deletePostQuery = `
	DELETE FROM blog_posts
	WHERE id = $1
	RETURNING ` + postColumns

// List returns all posts newest first. It never fails: an absent handle or
// a failing query both fold into the sample set.
func (r *PostgresPostRepository) List(ctx context.Context) []domain.Post {
	handle := r.manager.Handle(ctx)
	if handle == nil {
		return domain.SamplePosts()
	}

	rows, err := handle.QueryContext(ctx, listPostsQuery)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list posts; falling back to sample content")
		return domain.SamplePosts()
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var row postRow
		if err := row.scan(rows); err != nil {
			log.Error().Err(err).Msg("Failed to scan post row; falling back to sample content")
			return domain.SamplePosts()
		}
		posts = append(posts, *row.toDomain())
	}

	if err := rows.Err(); err != nil {
		log.Error().Err(err).Msg("Failed to read post rows; falling back to sample content")
		return domain.SamplePosts()
	}

	return posts
}

// GetByID returns the post with the given identity. A store miss, a query
// failure, and an absent handle all fall back to the sample set; the result
// is nil only when the id is absent there too.
func (r *PostgresPostRepository) GetByID(ctx context.Context, id int) *domain.Post {
	handle := r.manager.Handle(ctx)
	if handle == nil {
		return domain.SamplePostByID(id)
	}

	var row postRow
	err := row.scan(handle.QueryRowContext(ctx, getPostQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SamplePostByID(id)
	}
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("Failed to get post; falling back to sample content")
		return domain.SamplePostByID(id)
	}

	return row.toDomain()
}

// Create inserts a post and returns it with its store-assigned identity and
// creation timestamp. There is no sample fallback for writes: pretending an
// insert succeeded against in-memory data would mislead the caller.
func (r *PostgresPostRepository) Create(ctx context.Context, input domain.NewPost) (*domain.Post, error) {
	handle := r.manager.Handle(ctx)
	if handle == nil {
		return nil, domain.NewDatabaseError(domain.ErrUnavailable, "create post", nil)
	}

	var row postRow
	err := row.scan(handle.QueryRowContext(ctx, insertPostQuery,
		input.Title,
		input.Content,
		input.Excerpt,
		nullableString(input.ImageURL),
		input.Category,
		input.Published,
	))
	if err != nil {
		return nil, domain.NewDatabaseError(domain.ErrWriteFailed, "create post", err)
	}

	return row.toDomain(), nil
}

// Update applies the supplied fields to an existing post. Identity and
// creation timestamp are not updatable through this path; the patch has no
// way to carry them.
func (r *PostgresPostRepository) Update(ctx context.Context, id int, patch domain.PostPatch) (*domain.Post, error) {
	handle := r.manager.Handle(ctx)
	if handle == nil {
		return nil, domain.NewDatabaseError(domain.ErrUnavailable, "update post", nil)
	}

	if patch.IsEmpty() {
		// Nothing to change; still verify the row exists and return it.
		var row postRow
		err := row.scan(handle.QueryRowContext(ctx, getPostQuery, id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewDatabaseError(domain.ErrNotFound, "update post", nil)
		}
		if err != nil {
			return nil, domain.NewDatabaseError(domain.ErrWriteFailed, "update post", err)
		}
		return row.toDomain(), nil
	}

	query, args := buildUpdateQuery(id, patch)

	var row postRow
	err := row.scan(handle.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewDatabaseError(domain.ErrNotFound, "update post", nil)
	}
	if err != nil {
		return nil, domain.NewDatabaseError(domain.ErrWriteFailed, "update post", err)
	}

	return row.toDomain(), nil
}

// Delete removes a post and returns the deleted row. Deleting an already
// deleted id yields a not-found error, not a crash.
func (r *PostgresPostRepository) Delete(ctx context.Context, id int) (*domain.Post, error) {
	handle := r.manager.Handle(ctx)
	if handle == nil {
		return nil, domain.NewDatabaseError(domain.ErrUnavailable, "delete post", nil)
	}

	var row postRow
	err := row.scan(handle.QueryRowContext(ctx, deletePostQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewDatabaseError(domain.ErrNotFound, "delete post", nil)
	}
	if err != nil {
		return nil, domain.NewDatabaseError(domain.ErrWriteFailed, "delete post", err)
	}

	return row.toDomain(), nil
}

// buildUpdateQuery assembles an UPDATE touching only the supplied fields.
func buildUpdateQuery(id int, patch domain.PostPatch) (string, []any) {
	set := make([]string, 0, 6)
	args := make([]any, 0, 7)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Content != nil {
		add("content", *patch.Content)
	}
	if patch.Excerpt != nil {
		add("excerpt", *patch.Excerpt)
	}
	if patch.ImageURL != nil {
		add("image_url", nullableString(*patch.ImageURL))
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Published != nil {
		add("published", *patch.Published)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE blog_posts SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), postColumns,
	)

	return query, args
}

// nullableString maps an empty string to NULL for the optional image_url
// column.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
