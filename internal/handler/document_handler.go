package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/backend"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/middleware"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/overlay"
)

// DocumentHandler covers the document viewer: listing, deletion, the
// per-document AI chat, share links, and search-term highlight overlays.
type DocumentHandler struct {
	api backend.DocumentAPI
}

// NewDocumentHandler creates a DocumentHandler.
func NewDocumentHandler(api backend.DocumentAPI) *DocumentHandler {
	return &DocumentHandler{api: api}
}

// rolesAllowedToDelete matches the deletion gate shown in the documents
// screen. The backend enforces the same rule.
var rolesAllowedToDelete = map[domain.Role]bool{
	domain.RoleAdmin:      true,
	domain.RoleSuperAdmin: true,
	domain.RoleGestor:     true,
}

type documentListResponse struct {
	Documents []domain.SearchResult `json:"documents"`
	DocTypes  []string              `json:"doc_types"`
	CanDelete bool                  `json:"can_delete"`
}

// List returns every document visible to the user, with the known
// document types for the client-side filter. Listing is a search with an
// empty query.
func (h *DocumentHandler) List(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	docs, err := h.api.Search(c.Request.Context(), s.Token, "", domain.SearchFilters{})
	if err != nil {
		HandleError(c, err)
		return
	}
	types, err := h.api.DocumentTypes(c.Request.Context(), s.Token)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, documentListResponse{
		Documents: docs,
		DocTypes:  types,
		CanDelete: rolesAllowedToDelete[s.Role],
	})
}

// Delete removes a document.
func (h *DocumentHandler) Delete(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}
	if !rolesAllowedToDelete[s.Role] {
		RespondError(c, http.StatusForbidden, "FORBIDDEN", "your role cannot delete documents")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	if err := h.api.DeleteDocument(c.Request.Context(), s.Token, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat forwards a question about a document to the backend AI.
func (h *DocumentHandler) Chat(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "message is required")
		return
	}

	reply, err := h.api.Chat(c.Request.Context(), s.Token, id, req.Message)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, reply)
}

// PageMetadata returns the raw OCR words of one page, in natural-image
// pixel coordinates.
func (h *DocumentHandler) PageMetadata(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil || page < 1 {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid page number")
		return
	}

	words, err := h.api.PageMetadata(c.Request.Context(), s.Token, id, page)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"words": words})
}

type highlightsResponse struct {
	Query string         `json:"query"`
	Rects []overlay.Rect `json:"rects"`
}

// Highlights computes the CSS overlay rectangles for a search term on one
// page, given the dimensions the client is rendering the page image at.
// The client reports displayed and natural sizes as query parameters and
// re-requests on resize.
func (h *DocumentHandler) Highlights(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil || page < 1 {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid page number")
		return
	}

	query := c.Query("q")
	transform := overlay.NewDisplayTransform(
		queryFloat(c, "dw"),
		queryFloat(c, "dh"),
		queryFloat(c, "nw"),
		queryFloat(c, "nh"),
	)

	words, err := h.api.PageMetadata(c.Request.Context(), s.Token, id, page)
	if err != nil {
		HandleError(c, err)
		return
	}

	rects := overlay.Highlights(words, transform, query)
	if rects == nil {
		rects = []overlay.Rect{}
	}
	RespondOK(c, highlightsResponse{Query: query, Rects: rects})
}

// Links lists the active share links of a document.
func (h *DocumentHandler) Links(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	links, err := h.api.DocumentLinks(c.Request.Context(), s.Token, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, links)
}

type shareRequest struct {
	Hours int `json:"hours"`
}

// Share creates an expiring public link for a document. Defaults to 24
// hours when the client does not say.
func (h *DocumentHandler) Share(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Hours <= 0 {
		req.Hours = 24
	}

	link, err := h.api.CreateShareLink(c.Request.Context(), s.Token, id, req.Hours)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, link)
}

// Publish makes a document permanently public. The returned link never
// expires, unlike the ones from Share.
func (h *DocumentHandler) Publish(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	link, err := h.api.PublishDocument(c.Request.Context(), s.Token, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, link)
}

// Download resolves the direct backend URL of a page image for printing
// and downloads. The browser opens it in a new tab, so the handler
// answers with the URL rather than proxying the bytes.
func (h *DocumentHandler) Download(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}
	tenantID, err := strconv.ParseInt(c.Query("tenant"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid tenant id")
		return
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid page number")
		return
	}

	RespondOK(c, gin.H{"url": h.api.DownloadURL(tenantID, id, page)})
}

func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func queryFloat(c *gin.Context, name string) float64 {
	v, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		return 0
	}
	return v
}
