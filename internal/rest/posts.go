package rest

import (
	"net/http"
	"strconv"

	"github.com/dfryer1193/autoblog/api"
	"github.com/dfryer1193/autoblog/blog/application"
	"github.com/dfryer1193/autoblog/blog/domain"
	"github.com/dfryer1193/autoblog/shared/db"
	"github.com/gin-gonic/gin"
)

// PostsHandler serves the /posts CRUD surface.
type PostsHandler struct {
	service  *application.PostService
	resolver *db.ConfigResolver
}

func NewPostsHandler(service *application.PostService, resolver *db.ConfigResolver) *PostsHandler {
	return &PostsHandler{
		service:  service,
		resolver: resolver,
	}
}

// GetPosts lists all posts, newest first. This endpoint never fails:
// without a database it serves the sample set with a 200.
func (h *PostsHandler) GetPosts(c *gin.Context) {
	posts := h.service.ListPosts(c.Request.Context())
	c.JSON(http.StatusOK, toAPIPosts(posts))
}

// GetPost returns a single post or a 404.
func (h *PostsHandler) GetPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	post := h.service.GetPost(c.Request.Context(), id)
	if post == nil {
		writeError(c, http.StatusNotFound, api.ClassNotFound, msgNotFound, nil)
		return
	}

	c.JSON(http.StatusOK, toAPIPost(*post))
}

// GetPostHTML returns the post content rendered to HTML.
func (h *PostsHandler) GetPostHTML(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	html, found, err := h.service.RenderPostHTML(c.Request.Context(), id)
	if !found {
		writeError(c, http.StatusNotFound, api.ClassNotFound, msgNotFound, nil)
		return
	}
	if err != nil {
		writeServiceError(c, err, h.resolver.Configured())
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// CreatePost creates a post from a strict payload.
func (h *PostsHandler) CreatePost(c *gin.Context) {
	var req api.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, api.ClassBadRequest, msgBadPayload, nil)
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err, h.resolver.Configured())
		return
	}

	c.JSON(http.StatusCreated, toAPIPost(*post))
}

// UpdatePost applies a partial update to an existing post.
func (h *PostsHandler) UpdatePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var req api.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, api.ClassBadRequest, msgBadPayload, nil)
		return
	}

	post, err := h.service.UpdatePost(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err, h.resolver.Configured())
		return
	}

	c.JSON(http.StatusOK, toAPIPost(*post))
}

// DeletePost removes a post and confirms with the deleted row.
func (h *PostsHandler) DeletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := h.service.DeletePost(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, h.resolver.Configured())
		return
	}

	c.JSON(http.StatusOK, api.DeletePostResponse{
		Success: true,
		Deleted: toAPIPost(*post),
	})
}

// postID parses the id path parameter, replying 400 itself on failure so
// malformed ids never reach the repository.
func postID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, api.ClassBadRequest, msgInvalidID, nil)
		return 0, false
	}
	return id, true
}

func toAPIPost(p domain.Post) api.Post {
	return api.Post{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Excerpt:   p.Excerpt,
		ImageURL:  p.ImageURL,
		Category:  p.Category,
		Published: p.Published,
		CreatedAt: p.CreatedAt,
	}
}

func toAPIPosts(posts []domain.Post) []api.Post {
	out := make([]api.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, toAPIPost(p))
	}
	return out
}
