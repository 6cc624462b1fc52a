package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/backend"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/middleware"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/notify"
)

// NotificationHandler serves the notification bell and the super-admin
// broadcast form.
type NotificationHandler struct {
	api    backend.NotificationAPI
	poller *notify.Poller
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(api backend.NotificationAPI, poller *notify.Poller) *NotificationHandler {
	return &NotificationHandler{api: api, poller: poller}
}

// List returns the bell's notifications through the poll gate: the bell
// re-requests every poll interval, and reads inside one interval serve
// the cached copy instead of hitting the backend again.
func (h *NotificationHandler) List(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	notifications, err := h.poller.Get(c.Request.Context(), s.ID, s.Token)
	if err != nil {
		HandleError(c, err)
		return
	}

	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}
	RespondOK(c, gin.H{"notifications": notifications, "unread": unread})
}

// MarkRead marks one notification as read and drops the cached copy so
// the next bell refresh shows the new state.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid notification id")
		return
	}

	if err := h.api.MarkNotificationRead(c.Request.Context(), s.Token, id); err != nil {
		HandleError(c, err)
		return
	}
	h.poller.Invalidate(s.ID)
	RespondOK(c, gin.H{"read": id})
}

// MarkAllRead marks every notification as read.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	if err := h.api.MarkAllNotificationsRead(c.Request.Context(), s.Token); err != nil {
		HandleError(c, err)
		return
	}
	h.poller.Invalidate(s.ID)
	RespondOK(c, gin.H{"message": "all notifications marked read"})
}

// Send broadcasts a system notification to one tenant or to all of them.
// Super-admin only, guarded by route and re-checked by the backend.
func (h *NotificationHandler) Send(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		HandleError(c, domain.ErrUnauthorized)
		return
	}

	var n domain.SystemNotification
	if err := c.ShouldBindJSON(&n); err != nil || n.Title == "" || n.Message == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "title and message are required")
		return
	}
	if n.Type == "" {
		n.Type = "info"
	}

	if err := h.api.SendNotification(c.Request.Context(), s.Token, n); err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, gin.H{"message": "notification sent"})
}
