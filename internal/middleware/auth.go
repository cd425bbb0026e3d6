package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dfryer1193/autoblog/api"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionStore issues and validates the opaque admin session tokens handed
// out by the login endpoint. Tokens live in memory only; a restart logs
// every admin out.
type SessionStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		tokens: make(map[string]time.Time),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue creates a new session token.
func (s *SessionStore) Issue() string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = s.now().Add(s.ttl)
	return token
}

// Valid reports whether the token is live, pruning it when expired.
func (s *SessionStore) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}
	if s.now().After(expiry) {
		delete(s.tokens, token)
		return false
	}
	return true
}

// RequireAdmin guards write endpoints behind a bearer session token.
func RequireAdmin(sessions *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || !sessions.Valid(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{
				Error:     "Admin login required.",
				Class:     api.ClassUnauthorized,
				Timestamp: time.Now().UTC(),
			})
			return
		}

		c.Next()
	}
}
