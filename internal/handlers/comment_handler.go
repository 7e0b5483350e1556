package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/socialweb-app/backend/internal/models"
	"github.com/socialweb-app/backend/internal/services"
)

// CommentHandler handles the comment and reply tree endpoints.
type CommentHandler struct {
	interactions *services.InteractionService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(interactions *services.InteractionService) *CommentHandler {
	return &CommentHandler{interactions: interactions}
}

// RegisterCommentRoutes registers the comment API routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.GET("/posts/:post_id/comments", h.CommentTree)
	g.POST("/posts/:post_id/comments", h.AddComment)
	g.POST("/comments/:uid/replies", h.AddReply)
}

// CommentTree returns the full nested comment tree of a post
func (h *CommentHandler) CommentTree(c echo.Context) error {
	tree, err := h.interactions.CommentTree(c.Request().Context(), c.Param("post_id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"comments": tree})
}

// AddComment attaches a top-level comment to a post
func (h *CommentHandler) AddComment(c echo.Context) error {
	user := currentUser(c)
	req := new(models.CreateCommentRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if _, err := h.interactions.AddComment(c.Request().Context(), user, c.Param("post_id"), req.Text); err != nil {
		return commentError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"ok": true})
}

// AddReply attaches a reply to an existing comment
func (h *CommentHandler) AddReply(c echo.Context) error {
	user := currentUser(c)
	req := new(models.CreateCommentRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if _, err := h.interactions.AddReply(user, c.Param("uid"), req.Text); err != nil {
		return commentError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"ok": true})
}

// commentError renders validation failures as {"error": msg} for the
// inline comment forms; everything else goes through the shared mapping.
func commentError(c echo.Context, err error) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Msg})
	}
	return httpError(err)
}
