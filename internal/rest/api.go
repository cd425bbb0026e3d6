package rest

import (
	"github.com/dfryer1193/autoblog/internal/middleware"
	"github.com/gin-gonic/gin"
)

// NewApi wires every route. Reads are public; writes and uploads sit behind
// the admin session guard.
func NewApi(
	router *gin.Engine,
	posts *PostsHandler,
	admin *AdminHandler,
	upload *UploadHandler,
	status *StatusHandler,
	sessions *middleware.SessionStore,
) {
	router.GET("/posts", posts.GetPosts)
	router.GET("/posts/:id", posts.GetPost)
	router.GET("/posts/:id/html", posts.GetPostHTML)

	router.POST("/admin/login", admin.Login)
	router.GET("/status", status.Get)

	authed := router.Group("/", middleware.RequireAdmin(sessions))
	{
		authed.POST("/posts", posts.CreatePost)
		authed.PUT("/posts/:id", posts.UpdatePost)
		authed.DELETE("/posts/:id", posts.DeletePost)
		authed.POST("/upload", upload.Upload)
	}
}
