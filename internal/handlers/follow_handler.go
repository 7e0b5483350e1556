package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/socialweb-app/backend/internal/services"
)

// FollowHandler handles the follow graph endpoints.
type FollowHandler struct {
	social *services.SocialService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(social *services.SocialService) *FollowHandler {
	return &FollowHandler{social: social}
}

// RegisterFollowRoutes registers the follow API routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:username/follow", h.ToggleFollow)
	g.GET("/users/:username/following", h.Following)
	g.GET("/users/:username/followers", h.Followers)
	g.GET("/users/:username/mutual-friends", h.MutualFriends)
}

// ToggleFollow follows or unfollows the target user
func (h *FollowHandler) ToggleFollow(c echo.Context) error {
	user := currentUser(c)
	following, err := h.social.ToggleFollow(user, c.Param("username"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"following": following})
}

// Following lists the usernames the target user follows
func (h *FollowHandler) Following(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"users": h.social.Following(c.Param("username"))})
}

// Followers lists the usernames following the target user
func (h *FollowHandler) Followers(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"users": h.social.Followers(c.Param("username"))})
}

// MutualFriends counts the accounts both the viewer and the target follow
func (h *FollowHandler) MutualFriends(c echo.Context) error {
	user := currentUser(c)
	count := h.social.MutualFriends(user.Username, c.Param("username"))
	return c.JSON(http.StatusOK, echo.Map{"mutual_friends": count})
}
