package handlers

import (
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sunileswar-collab/BusinessCheck/internal/storage"
	"github.com/sunileswar-collab/BusinessCheck/pkg/apperrors"
)

// signedURLTTL bounds how long a redirect to a presigned object stays valid.
const signedURLTTL = 15 * time.Minute

// FileHandler serves stored uploads. Local objects are streamed directly;
// backends with a signing scheme (S3) answer with a redirect to a
// short-lived presigned URL instead of proxying the object.
type FileHandler struct {
	*BaseHandler
	store storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		store:       store,
	}
}

func (h *FileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/files/*path", h.Serve)
}

func (h *FileHandler) Serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("path"), "/")
	if key == "" {
		h.HandleError(c, apperrors.NewNotFoundError("File not found"))
		return
	}

	exists, err := h.store.Exists(c.Request.Context(), key)
	if err != nil {
		h.HandleError(c, apperrors.DependencyError("storage", err))
		return
	}
	if !exists {
		h.HandleError(c, apperrors.NewNotFoundError("File not found"))
		return
	}

	publicURL, err := h.store.GetURL(c.Request.Context(), key)
	if err != nil {
		h.HandleError(c, apperrors.DependencyError("storage", err))
		return
	}
	signedURL, err := h.store.GetSignedURL(c.Request.Context(), key, signedURLTTL)
	if err != nil {
		h.HandleError(c, apperrors.DependencyError("storage", err))
		return
	}
	// A signing backend returns a URL that differs from the plain one.
	if signedURL != publicURL {
		c.Redirect(http.StatusFound, signedURL)
		return
	}

	size, err := h.store.GetSize(c.Request.Context(), key)
	if err != nil {
		h.HandleError(c, apperrors.DependencyError("storage", err))
		return
	}
	reader, err := h.store.Get(c.Request.Context(), key)
	if err != nil {
		h.HandleError(c, apperrors.DependencyError("storage", err))
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, size, contentType, reader, nil)
}
