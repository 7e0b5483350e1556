package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/socialweb-app/backend/internal/services"
)

// NotificationHandler handles the notifications page and API.
type NotificationHandler struct {
	notifications *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// RegisterNotificationRoutes registers the notification API routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.List)
	g.GET("/notifications/unseen-count", h.UnseenCount)
}

// RegisterNotificationPages registers the notification page routes
func (h *NotificationHandler) RegisterNotificationPages(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/notifications", h.NotificationsPage, auth)
}

// NotificationsPage renders the viewer's notifications, newest first.
// Opening the page marks everything listed as seen.
func (h *NotificationHandler) NotificationsPage(c echo.Context) error {
	user := currentUser(c)
	return c.Render(http.StatusOK, "notifications.html", echo.Map{
		"User":          user,
		"Notifications": h.notifications.ListFor(c.Request().Context(), user.Username),
	})
}

// List returns the viewer's notifications as JSON, marking them seen
func (h *NotificationHandler) List(c echo.Context) error {
	user := currentUser(c)
	views := h.notifications.ListFor(c.Request().Context(), user.Username)
	return c.JSON(http.StatusOK, echo.Map{"notifications": views})
}

// UnseenCount returns the unread badge count without marking anything seen
func (h *NotificationHandler) UnseenCount(c echo.Context) error {
	user := currentUser(c)
	return c.JSON(http.StatusOK, echo.Map{"unseen": h.notifications.CountUnseen(user.Username)})
}
