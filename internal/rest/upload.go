package rest

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/dfryer1193/autoblog/api"
	"github.com/dfryer1193/autoblog/shared/blob"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// Only web-friendly image formats are accepted.
var allowedImageTypes = map[string]string{
	"image/jpeg": "jpeg",
	"image/jpg":  "jpeg",
	"image/png":  "png",
	"image/webp": "webp",
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// UploadHandler accepts image uploads and stores them through the blob
// store, returning the public URL for use as a post's image reference.
type UploadHandler struct {
	store blob.Store
}

func NewUploadHandler(store blob.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload handles a multipart image upload.
func (h *UploadHandler) Upload(c *gin.Context) {
	if !h.store.Configured() {
		writeError(c, http.StatusServiceUnavailable, api.ClassUnavailable,
			"Image upload service not configured. Use direct image URLs instead.", nil)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		writeError(c, http.StatusBadRequest, api.ClassBadRequest, "No file uploaded.", nil)
		return
	}

	contentType := header.Header.Get("Content-Type")
	format, allowed := allowedImageTypes[contentType]
	if !allowed {
		writeError(c, http.StatusBadRequest, api.ClassBadRequest,
			"Invalid file type. Please upload JPG, PNG, or WEBP images only.", nil)
		return
	}

	if header.Size > maxUploadBytes {
		writeError(c, http.StatusBadRequest, api.ClassBadRequest,
			"File too large. Please upload images smaller than 10MB.", nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		log.Error().Err(err).Msg("Failed to open uploaded file")
		writeError(c, http.StatusInternalServerError, api.ClassInternal, msgInternal, nil)
		return
	}
	defer file.Close()

	name := unsafeFilenameChars.ReplaceAllString(header.Filename, "_")
	filename := fmt.Sprintf("blog-images/%d-%s", time.Now().UnixMilli(), name)

	url, err := h.store.Put(c.Request.Context(), filename, file)
	if err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("Failed to store upload")
		writeError(c, http.StatusInternalServerError, api.ClassInternal,
			"Failed to upload image. Please try again or use a direct image URL.", nil)
		return
	}

	c.JSON(http.StatusOK, api.UploadResponse{
		URL:          url,
		SecureURL:    url,
		PublicID:     filename,
		Bytes:        header.Size,
		Format:       format,
		ResourceType: "image",
	})
}
