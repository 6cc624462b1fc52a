package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/backend"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/middleware"
)

// maxUploadBytes caps a single digitization upload at 50 MB.
const maxUploadBytes = 50 << 20

// UploadHandler proxies document digitization uploads to the backend.
type UploadHandler struct {
	api backend.DocumentAPI
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(api backend.DocumentAPI) *UploadHandler {
	return &UploadHandler{api: api}
}

// Upload streams a multipart file to the backend without buffering it to
// disk. Title defaults to the filename when omitted.
func (h *UploadHandler) Upload(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "a file is required")
		return
	}
	defer file.Close()

	title := c.PostForm("title")
	if title == "" {
		title = header.Filename
	}

	result, err := h.api.Upload(c.Request.Context(), s.Token, title, header.Filename, file)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, result)
}
