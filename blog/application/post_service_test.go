package application

import (
	"context"
	"strings"
	"testing"

	"github.com/dfryer1193/autoblog/api"
	"github.com/dfryer1193/autoblog/blog/domain"
)

// fakeRepo records the inputs the service hands to the repository.
type fakeRepo struct {
	lastCreate *domain.NewPost
	lastPatch  *domain.PostPatch
	createErr  error
	updateErr  error
	deleteErr  error
	getResult  *domain.Post
}

func (f *fakeRepo) List(context.Context) []domain.Post {
	return domain.SamplePosts()
}

func (f *fakeRepo) GetByID(context.Context, int) *domain.Post {
	return f.getResult
}

func (f *fakeRepo) Create(_ context.Context, input domain.NewPost) (*domain.Post, error) {
	f.lastCreate = &input
	if f.createErr != nil {
		return nil, f.createErr
	}
	post := domain.Post{Title: input.Title, Content: input.Content, Excerpt: input.Excerpt,
		ImageURL: input.ImageURL, Category: input.Category, Published: input.Published}
	post.ID = 1
	return &post, nil
}

func (f *fakeRepo) Update(_ context.Context, id int, patch domain.PostPatch) (*domain.Post, error) {
	f.lastPatch = &patch
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &domain.Post{ID: id}, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int) (*domain.Post, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &domain.Post{ID: id}, nil
}

func newTestService(repo domain.PostRepository) *PostService {
	return NewPostService(repo, NewMarkdownRenderer())
}

func TestCreatePostValidation(t *testing.T) {
	tests := []struct {
		name       string
		req        api.CreatePostRequest
		wantFields []string
	}{
		{
			name:       "Empty payload",
			req:        api.CreatePostRequest{},
			wantFields: []string{"title", "content", "excerpt"},
		},
		{
			name: "Whitespace-only title",
			req: api.CreatePostRequest{
				Title:   "   ",
				Content: "body",
				Excerpt: "sum",
			},
			wantFields: []string{"title"},
		},
		{
			name: "Missing excerpt",
			req: api.CreatePostRequest{
				Title:   "t",
				Content: "body",
			},
			wantFields: []string{"excerpt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			service := newTestService(repo)

			_, err := service.CreatePost(context.Background(), tt.req)

			vErr, ok := AsValidationError(err)
			if !ok {
				t.Fatalf("CreatePost() error = %v, want *ValidationError", err)
			}
			for _, field := range tt.wantFields {
				if _, present := vErr.Fields[field]; !present {
					t.Errorf("ValidationError missing field %q: %v", field, vErr.Fields)
				}
			}
			if repo.lastCreate != nil {
				t.Error("repository was called despite validation failure")
			}
		})
	}
}

func TestCreatePostDefaults(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo)

	post, err := service.CreatePost(context.Background(), api.CreatePostRequest{
		Title:   "  My Title  ",
		Content: "body",
		Excerpt: "sum",
	})
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}

	if repo.lastCreate.Category != domain.DefaultCategory {
		t.Errorf("category = %q, want default %q", repo.lastCreate.Category, domain.DefaultCategory)
	}
	if !repo.lastCreate.Published {
		t.Error("published = false, want default true")
	}
	if repo.lastCreate.Title != "My Title" {
		t.Errorf("title = %q, want trimmed \"My Title\"", repo.lastCreate.Title)
	}
	if post.Category != domain.DefaultCategory {
		t.Errorf("returned category = %q, want %q", post.Category, domain.DefaultCategory)
	}
}

func TestCreatePostExplicitValuesKept(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo)

	published := false
	_, err := service.CreatePost(context.Background(), api.CreatePostRequest{
		Title:     "t",
		Content:   "body",
		Excerpt:   "sum",
		Category:  "Diagnostics",
		Published: &published,
	})
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}

	if repo.lastCreate.Category != "Diagnostics" {
		t.Errorf("category = %q, want \"Diagnostics\"", repo.lastCreate.Category)
	}
	if repo.lastCreate.Published {
		t.Error("published = true, want explicit false")
	}
}

func TestUpdatePostPartialPatch(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo)

	title := "New Title"
	_, err := service.UpdatePost(context.Background(), 1, api.UpdatePostRequest{Title: &title})
	if err != nil {
		t.Fatalf("UpdatePost() error = %v", err)
	}

	patch := repo.lastPatch
	if patch.Title == nil || *patch.Title != "New Title" {
		t.Errorf("patch.Title = %v, want \"New Title\"", patch.Title)
	}
	if patch.Content != nil || patch.Excerpt != nil || patch.Category != nil ||
		patch.ImageURL != nil || patch.Published != nil {
		t.Errorf("patch carries unset fields: %+v", patch)
	}
}

func TestUpdatePostRejectsBlankPresentFields(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo)

	blank := "  "
	_, err := service.UpdatePost(context.Background(), 1, api.UpdatePostRequest{Title: &blank})

	if _, ok := AsValidationError(err); !ok {
		t.Fatalf("UpdatePost() error = %v, want *ValidationError", err)
	}
	if repo.lastPatch != nil {
		t.Error("repository was called despite validation failure")
	}
}

func TestUpdatePostPropagatesRepositoryErrors(t *testing.T) {
	repo := &fakeRepo{updateErr: domain.NewDatabaseError(domain.ErrNotFound, "update post", nil)}
	service := newTestService(repo)

	title := "x"
	_, err := service.UpdatePost(context.Background(), 999, api.UpdatePostRequest{Title: &title})
	if !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("UpdatePost() error = %v, want DatabaseError(not_found)", err)
	}
}

func TestRenderPostHTML(t *testing.T) {
	repo := &fakeRepo{getResult: &domain.Post{
		ID:      1,
		Content: "## Heading\n\n- one\n- two\n\nA paragraph.",
	}}
	service := newTestService(repo)

	html, found, err := service.RenderPostHTML(context.Background(), 1)
	if err != nil {
		t.Fatalf("RenderPostHTML() error = %v", err)
	}
	if !found {
		t.Fatal("RenderPostHTML() found = false, want true")
	}
	for _, want := range []string{"<h2", "Heading", "<li>one</li>", "<p>A paragraph.</p>"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q:\n%s", want, html)
		}
	}
}

func TestRenderPostHTMLAbsentPost(t *testing.T) {
	service := newTestService(&fakeRepo{})

	_, found, err := service.RenderPostHTML(context.Background(), 42)
	if err != nil {
		t.Fatalf("RenderPostHTML() error = %v", err)
	}
	if found {
		t.Error("RenderPostHTML() found = true for an absent post")
	}
}
