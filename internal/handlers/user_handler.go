package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/socialweb-app/backend/internal/models"
	"github.com/socialweb-app/backend/internal/repositories"
	"github.com/socialweb-app/backend/internal/services"
	"github.com/socialweb-app/backend/pkg/blobstore"
)

// UserHandler handles profile editing and account lookups.
type UserHandler struct {
	users         repositories.UserRepository
	social        *services.SocialService
	notifications *services.NotificationService
	blobs         *blobstore.Store
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, social *services.SocialService, notifications *services.NotificationService, blobs *blobstore.Store) *UserHandler {
	return &UserHandler{users: userRepo, social: social, notifications: notifications, blobs: blobs}
}

// RegisterUserRoutes registers the user API routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/search", h.Search)
	g.GET("/users/:username", h.Profile)
}

// RegisterUserPages registers the profile page routes
func (h *UserHandler) RegisterUserPages(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/profile-edit", h.ProfileEditPage, auth)
	e.POST("/profile-edit", h.UpdateProfile, auth)
}

// Search finds accounts whose username contains the query string
func (h *UserHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusOK, echo.Map{"users": []models.UserCompact{}})
	}
	users, err := h.users.SearchUsers(query)
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"users": []models.UserCompact{}})
	}
	results := make([]models.UserCompact, 0, len(users))
	for i := range users {
		results = append(results, users[i].ToCompact())
	}
	return c.JSON(http.StatusOK, echo.Map{"users": results})
}

// Profile returns the public view of an account with its follow counts
func (h *UserHandler) Profile(c echo.Context) error {
	viewer := currentUser(c)
	username := c.Param("username")
	user, err := h.users.GetUserByUsername(username)
	if err != nil {
		return httpError(err)
	}
	following := h.social.Following(username)
	followers := h.social.Followers(username)
	viewerFollows := false
	for _, follower := range followers {
		if follower == viewer.Username {
			viewerFollows = true
			break
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"uid":            user.UID,
		"username":       user.Username,
		"avatar_url":     user.AvatarURL,
		"cover_url":      user.CoverURL,
		"bio":            user.Bio,
		"following":      len(following),
		"followers":      len(followers),
		"mutual_friends": h.social.MutualFriends(viewer.Username, username),
		"viewer_follows": viewerFollows,
	})
}

// ProfileEditPage renders the profile edit form
func (h *UserHandler) ProfileEditPage(c echo.Context) error {
	user := currentUser(c)
	return c.Render(http.StatusOK, "profile_edit.html", echo.Map{
		"User":        user,
		"UnseenCount": h.notifications.CountUnseen(user.Username),
	})
}

// UpdateProfile applies the edited profile fields to the logged-in user.
// The bio is silently cut to 200 characters; an avatar or cover that fails
// to decode leaves the current image untouched.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user := currentUser(c)

	req := new(models.UpdateProfileRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return c.Render(http.StatusBadRequest, "profile_edit.html", echo.Map{
			"User": user, "Error": "Género inválido.",
		})
	}

	if req.Birthdate != "" {
		birthdate, err := time.Parse("2006-01-02", req.Birthdate)
		if err != nil {
			return c.Render(http.StatusBadRequest, "profile_edit.html", echo.Map{
				"User": user, "Error": "Fecha de nacimiento inválida.",
			})
		}
		user.Birthdate = &birthdate
	}

	user.Gender = req.Gender
	user.Bio = services.Truncate(req.Bio, 200)

	ctx := c.Request().Context()
	if req.Avatar != "" {
		if url, err := h.blobs.SaveDataURI(ctx, req.Avatar, "avatars/avatar.png"); err == nil {
			user.AvatarURL = url
		}
	}
	if req.Cover != "" {
		if url, err := h.blobs.SaveDataURI(ctx, req.Cover, "covers/cover.png"); err == nil {
			user.CoverURL = url
		}
	}

	if err := h.users.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update profile")
	}
	return c.Render(http.StatusOK, "profile_edit.html", echo.Map{"User": user, "Saved": true})
}
