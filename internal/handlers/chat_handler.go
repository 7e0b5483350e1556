package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/socialweb-app/backend/internal/models"
	"github.com/socialweb-app/backend/internal/services"
	"github.com/socialweb-app/backend/pkg/blobstore"
)

// ChatHandler handles direct messaging pages and API.
type ChatHandler struct {
	messaging     *services.MessagingService
	notifications *services.NotificationService
	blobs         *blobstore.Store
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(messaging *services.MessagingService, notifications *services.NotificationService, blobs *blobstore.Store) *ChatHandler {
	return &ChatHandler{messaging: messaging, notifications: notifications, blobs: blobs}
}

// RegisterChatRoutes registers the chat API routes
func (h *ChatHandler) RegisterChatRoutes(g *echo.Group) {
	g.GET("/chat/threads", h.Threads)
	g.GET("/chat/:username/messages", h.Thread)
	g.POST("/chat/:username/messages", h.SendMessage)
}

// RegisterChatPages registers the chat page routes
func (h *ChatHandler) RegisterChatPages(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/chat", h.ChatPage, auth)
}

// ChatPage renders the chat sidebar, plus the open conversation when the
// "with" query parameter names a partner.
func (h *ChatHandler) ChatPage(c echo.Context) error {
	user := currentUser(c)
	data := echo.Map{
		"User":        user,
		"Threads":     h.messaging.ThreadSummary(user),
		"UnseenCount": h.notifications.CountUnseen(user.Username),
	}
	if partner := c.QueryParam("with"); partner != "" {
		messages, err := h.messaging.GetThread(user, partner)
		if err != nil {
			return httpError(err)
		}
		data["Partner"] = partner
		data["Messages"] = messages
	}
	return c.Render(http.StatusOK, "chat.html", data)
}

// Threads lists the viewer's chat partners with unread counts
func (h *ChatHandler) Threads(c echo.Context) error {
	user := currentUser(c)
	return c.JSON(http.StatusOK, echo.Map{"threads": h.messaging.ThreadSummary(user)})
}

// Thread returns the merged conversation with a partner, marking the
// viewer's unread messages as seen
func (h *ChatHandler) Thread(c echo.Context) error {
	user := currentUser(c)
	messages, err := h.messaging.GetThread(user, c.Param("username"))
	if err != nil {
		return httpError(err)
	}
	payload := make([]echo.Map, 0, len(messages))
	for i := range messages {
		payload = append(payload, messageJSON(&messages[i], user.Username))
	}
	return c.JSON(http.StatusOK, echo.Map{"messages": payload})
}

// SendMessage stores a new message addressed to the partner
func (h *ChatHandler) SendMessage(c echo.Context) error {
	user := currentUser(c)
	req := new(models.SendMessageRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	imageURL := ""
	if req.Image != "" {
		url, err := h.blobs.SaveDataURI(c.Request().Context(), req.Image, "chat/image.png")
		if err == nil {
			imageURL = url
		}
	}

	message, err := h.messaging.SendMessage(user, c.Param("username"), req.Text, imageURL)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Msg})
		}
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": messageJSON(message, user.Username)})
}

func messageJSON(m *models.Message, viewer string) echo.Map {
	return echo.Map{
		"uid":               m.UID,
		"sender_username":   m.SenderUsername,
		"receiver_username": m.ReceiverUsername,
		"text":              m.Text,
		"image_url":         m.ImageURL,
		"seen":              m.Seen,
		"created_at":        m.CreatedAt,
		"is_me":             m.SenderUsername == viewer,
	}
}
