package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dfryer1193/autoblog/blog/domain"
	"golang.org/x/crypto/bcrypt"
)

// Each statement is idempotent and safe to run repeatedly; the bootstrap
// tool may be pointed at the same database any number of times.
const createUsersTable = `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)
`

const createBlogPostsTable = `
	CREATE TABLE IF NOT EXISTS blog_posts (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		excerpt TEXT NOT NULL,
		image_url TEXT,
		category TEXT NOT NULL,
		published BOOLEAN DEFAULT true,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)
`

const seedAdminUserQuery = `
	INSERT INTO users (username, password)
	VALUES ($1, $2)
	ON CONFLICT (username) DO NOTHING
`

const countPostsQuery = `SELECT COUNT(*) FROM blog_posts`

const insertSeedPostQuery = `
	INSERT INTO blog_posts (title, content, excerpt, image_url, category, published, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// BootstrapOptions controls the schema bootstrap.
type BootstrapOptions struct {
	AdminUsername string
	AdminPassword string

	// SeedPosts inserts the fixed sample set when blog_posts is empty, so a
	// fresh database starts with the same content the fallback path serves.
	SeedPosts bool
}

// Bootstrap creates the schema, seeds the admin user, and optionally seeds
// the sample posts. It runs DDL first so the seed statements always have
// tables to land in.
func Bootstrap(ctx context.Context, handle *sql.DB, opts BootstrapOptions) error {
	if _, err := handle.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	if _, err := handle.ExecContext(ctx, createBlogPostsTable); err != nil {
		return fmt.Errorf("failed to create blog_posts table: %w", err)
	}

	if err := seedAdminUser(ctx, handle, opts.AdminUsername, opts.AdminPassword); err != nil {
		return err
	}

	if opts.SeedPosts {
		if err := seedSamplePosts(ctx, handle); err != nil {
			return err
		}
	}

	return nil
}

func seedAdminUser(ctx context.Context, handle *sql.DB, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("admin username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if _, err := handle.ExecContext(ctx, seedAdminUserQuery, username, string(hash)); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return nil
}

// seedSamplePosts inserts the fallback set into an empty blog_posts table.
// Posts are inserted in fallback order so serial identities line up with
// the ids the fallback path serves.
func seedSamplePosts(ctx context.Context, handle *sql.DB) error {
	var count int
	if err := handle.QueryRowContext(ctx, countPostsQuery).Scan(&count); err != nil {
		return fmt.Errorf("failed to count existing posts: %w", err)
	}

	if count > 0 {
		return nil
	}

	tx, err := handle.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}

	for _, post := range domain.SamplePosts() {
		var imageURL any
		if post.ImageURL != "" {
			imageURL = post.ImageURL
		}

		_, err := tx.ExecContext(ctx, insertSeedPostQuery,
			post.Title,
			post.Content,
			post.Excerpt,
			imageURL,
			post.Category,
			post.Published,
			post.CreatedAt,
		)
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return fmt.Errorf("failed to rollback seed after error %v: %w", err, rbErr)
			}
			return fmt.Errorf("failed to seed post %q: %w", post.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	return nil
}
