package rest

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dfryer1193/autoblog/blog/application"
	"github.com/dfryer1193/autoblog/blog/domain"
	"github.com/dfryer1193/autoblog/blog/persistence"
	"github.com/dfryer1193/autoblog/internal/middleware"
	"github.com/dfryer1193/autoblog/shared/blob"
	"github.com/dfryer1193/autoblog/shared/db"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testAdminPassword = "test-secret"

// fixture is a fully wired router plus the pieces tests poke at directly.
type fixture struct {
	router   *gin.Engine
	sessions *middleware.SessionStore
}

// newFixture wires the API around the given repository. env drives the
// config resolver; an empty map means "no database configured".
func newFixture(t *testing.T, repo domain.PostRepository, env map[string]string, store blob.Store) *fixture {
	t.Helper()

	resolver := db.NewConfigResolverFromLookup(func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	})
	manager := db.NewConnectionManager(resolver, nil)

	service := application.NewPostService(repo, application.NewMarkdownRenderer())
	sessions := middleware.NewSessionStore(time.Hour)

	admin := NewAdminHandler(testAdminPassword, sessions)
	admin.delay = 0 // no brute-force delay in tests

	if store == nil {
		store = blob.NewDiskStore("", "/images")
	}

	router := gin.New()
	router.Use(gin.CustomRecovery(middleware.HandlePanics()))
	NewApi(
		router,
		NewPostsHandler(service, resolver),
		admin,
		NewUploadHandler(store),
		NewStatusHandler(resolver, manager, store, testAdminPassword),
		sessions,
	)

	return &fixture{router: router, sessions: sessions}
}

// fallbackRepo builds the real repository against a manager that has no
// configuration, exercising the sample fallback end to end.
func fallbackRepo() domain.PostRepository {
	resolver := db.NewConfigResolverFromLookup(func(string) (string, bool) { return "", false })
	return persistence.NewPostRepository(db.NewConnectionManager(resolver, nil))
}

func (f *fixture) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out),
		"response body was not valid JSON: %s", rec.Body.String())
	return out
}

// stubRepo is a scriptable repository for the handler tests.
type stubRepo struct {
	posts     []domain.Post
	byID      map[int]*domain.Post
	createErr error
	updateErr error
	deleteErr error
	created   *domain.Post
	updated   *domain.Post
	deleted   *domain.Post
}

func (s *stubRepo) List(context.Context) []domain.Post { return s.posts }

func (s *stubRepo) GetByID(_ context.Context, id int) *domain.Post { return s.byID[id] }

func (s *stubRepo) Create(_ context.Context, input domain.NewPost) (*domain.Post, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubRepo) Update(_ context.Context, _ int, _ domain.PostPatch) (*domain.Post, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.updated, nil
}

func (s *stubRepo) Delete(_ context.Context, _ int) (*domain.Post, error) {
	if s.deleteErr != nil {
		return nil, s.deleteErr
	}
	return s.deleted, nil
}

var _ domain.PostRepository = (*stubRepo)(nil)

func adminToken(f *fixture) string {
	return f.sessions.Issue()
}

func databaseEnv() map[string]string {
	return map[string]string{"DATABASE_URL": "postgresql://u:p@db.example.com:5432/blog"}
}
