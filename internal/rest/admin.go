package rest

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/dfryer1193/autoblog/api"
	"github.com/dfryer1193/autoblog/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DefaultAdminPassword is used when ADMIN_PASSWORD is unset. The status
// probe calls it out so deployments don't ship with it unnoticed.
const DefaultAdminPassword = "admin123"

const loginDelay = time.Second

// AdminHandler is the admin gate: it checks the shared secret and issues an
// opaque session token for the write endpoints.
type AdminHandler struct {
	password string
	sessions *middleware.SessionStore

	// delay slows every attempt to blunt brute forcing; tests shorten it.
	delay time.Duration
}

func NewAdminHandler(password string, sessions *middleware.SessionStore) *AdminHandler {
	if password == "" {
		password = DefaultAdminPassword
	}
	return &AdminHandler{
		password: password,
		sessions: sessions,
		delay:    loginDelay,
	}
}

// Login checks the submitted secret and returns a session token.
func (h *AdminHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		writeError(c, http.StatusBadRequest, api.ClassBadRequest, "Password is required.", nil)
		return
	}

	time.Sleep(h.delay)

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) != 1 {
		log.Warn().Str("client", c.ClientIP()).Msg("Failed admin login attempt")
		writeError(c, http.StatusUnauthorized, api.ClassUnauthorized, "Invalid password.", nil)
		return
	}

	c.JSON(http.StatusOK, api.LoginResponse{
		Success: true,
		Token:   h.sessions.Issue(),
	})
}
