package rest

import (
	"net/http"
	"time"

	"github.com/dfryer1193/autoblog/api"
	"github.com/dfryer1193/autoblog/shared/blob"
	"github.com/dfryer1193/autoblog/shared/db"
	"github.com/gin-gonic/gin"
)

// StatusHandler reports which collaborating services are configured. It
// never forces a connection attempt: it reads the manager's current state,
// so probing a freshly started process reports "unattempted" rather than
// connecting on the probe's behalf.
type StatusHandler struct {
	resolver      *db.ConfigResolver
	manager       *db.ConnectionManager
	blob          blob.Store
	adminPassword string
}

func NewStatusHandler(resolver *db.ConfigResolver, manager *db.ConnectionManager, store blob.Store, adminPassword string) *StatusHandler {
	return &StatusHandler{
		resolver:      resolver,
		manager:       manager,
		blob:          store,
		adminPassword: adminPassword,
	}
}

// Get returns the environment probe payload.
func (h *StatusHandler) Get(c *gin.Context) {
	configured := h.resolver.Configured()

	dbType := "none"
	if configured {
		dbType = "neon-postgres"
	}

	c.JSON(http.StatusOK, api.StatusResponse{
		Timestamp: time.Now().UTC(),
		Services: api.ServiceStatus{
			Database: api.DatabaseStatus{
				Configured: configured,
				State:      h.manager.State().String(),
				Type:       dbType,
			},
			Blob: api.BlobStatus{
				Configured: h.blob.Configured(),
			},
			Admin: api.AdminStatus{
				Configured:      h.adminPassword != "",
				DefaultPassword: h.adminPassword == "" || h.adminPassword == DefaultAdminPassword,
			},
		},
	})
}
