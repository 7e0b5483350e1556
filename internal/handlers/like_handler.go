package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/socialweb-app/backend/internal/services"
)

// LikeHandler handles like toggles on posts and comments.
type LikeHandler struct {
	interactions *services.InteractionService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(interactions *services.InteractionService) *LikeHandler {
	return &LikeHandler{interactions: interactions}
}

// RegisterLikeRoutes registers the like API routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/like", h.TogglePostLike)
	g.POST("/comments/:uid/like", h.ToggleCommentLike)
}

// TogglePostLike toggles the user's like on a post
func (h *LikeHandler) TogglePostLike(c echo.Context) error {
	user := currentUser(c)
	result, err := h.interactions.TogglePostLike(c.Request().Context(), user, c.Param("post_id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": result.Liked, "likes": result.Count})
}

// ToggleCommentLike toggles the user's like on a comment
func (h *LikeHandler) ToggleCommentLike(c echo.Context) error {
	user := currentUser(c)
	result, err := h.interactions.ToggleCommentLike(user, c.Param("uid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": result.Liked, "likes": result.Count})
}
