package application

import (
	"context"
	"strings"

	"github.com/dfryer1193/autoblog/api"
	"github.com/dfryer1193/autoblog/blog/domain"
)

// PostService validates and normalizes incoming payloads before they reach
// the repository, so malformed input never turns into a database round trip.
type PostService struct {
	repo     domain.PostRepository
	markdown MarkdownRenderer
}

func NewPostService(repo domain.PostRepository, markdown MarkdownRenderer) *PostService {
	return &PostService{
		repo:     repo,
		markdown: markdown,
	}
}

// ListPosts returns all posts, newest first. Never fails.
func (s *PostService) ListPosts(ctx context.Context) []domain.Post {
	return s.repo.List(ctx)
}

// GetPost returns the post with the given identity, or nil when absent.
func (s *PostService) GetPost(ctx context.Context, id int) *domain.Post {
	return s.repo.GetByID(ctx, id)
}

// CreatePost validates the strict create payload, applies defaults, and
// inserts. Returned errors are either *ValidationError or
// *domain.DatabaseError.
func (s *PostService) CreatePost(ctx context.Context, req api.CreatePostRequest) (*domain.Post, error) {
	fields := map[string]string{}
	requireText(fields, "title", req.Title)
	requireText(fields, "content", req.Content)
	requireText(fields, "excerpt", req.Excerpt)
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	input := domain.NewPost{
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Excerpt:   strings.TrimSpace(req.Excerpt),
		ImageURL:  strings.TrimSpace(req.ImageURL),
		Category:  strings.TrimSpace(req.Category),
		Published: true,
	}
	if input.Category == "" {
		input.Category = domain.DefaultCategory
	}
	if req.Published != nil {
		input.Published = *req.Published
	}

	return s.repo.Create(ctx, input)
}

// UpdatePost validates the partial payload and applies only the supplied
// fields. Errors follow the same contract as CreatePost, plus the
// repository's not-found outcome.
func (s *PostService) UpdatePost(ctx context.Context, id int, req api.UpdatePostRequest) (*domain.Post, error) {
	fields := map[string]string{}
	if req.Title != nil {
		requireText(fields, "title", *req.Title)
	}
	if req.Content != nil {
		requireText(fields, "content", *req.Content)
	}
	if req.Excerpt != nil {
		requireText(fields, "excerpt", *req.Excerpt)
	}
	if req.Category != nil {
		requireText(fields, "category", *req.Category)
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	patch := domain.PostPatch{
		Title:     trimmed(req.Title),
		Content:   req.Content,
		Excerpt:   trimmed(req.Excerpt),
		ImageURL:  trimmed(req.ImageURL),
		Category:  trimmed(req.Category),
		Published: req.Published,
	}

	return s.repo.Update(ctx, id, patch)
}

// DeletePost removes a post and returns the deleted row.
func (s *PostService) DeletePost(ctx context.Context, id int) (*domain.Post, error) {
	return s.repo.Delete(ctx, id)
}

// RenderPostHTML returns the post's content rendered to HTML, with the same
// found-or-absent contract as GetPost.
func (s *PostService) RenderPostHTML(ctx context.Context, id int) (string, bool, error) {
	post := s.repo.GetByID(ctx, id)
	if post == nil {
		return "", false, nil
	}

	html, err := s.markdown.Render(post.Content)
	if err != nil {
		return "", true, err
	}
	return html, true, nil
}

// requireText records a field error when the value is blank.
func requireText(fields map[string]string, name, value string) {
	if strings.TrimSpace(value) == "" {
		fields[name] = "must not be empty"
	}
}

// trimmed trims a present optional field, passing nil through.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
