package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/socialweb-app/backend/internal/models"
	"github.com/socialweb-app/backend/internal/repositories"
	"github.com/socialweb-app/backend/internal/services"
	"github.com/socialweb-app/backend/pkg/blobstore"
)

// PostHandler handles publishing posts and serving the home feed.
type PostHandler struct {
	posts         repositories.PostRepository
	feed          *services.FeedService
	notifications *services.NotificationService
	blobs         *blobstore.Store
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, feed *services.FeedService, notifications *services.NotificationService, blobs *blobstore.Store) *PostHandler {
	return &PostHandler{posts: postRepo, feed: feed, notifications: notifications, blobs: blobs}
}

// RegisterPostRoutes registers the post API routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/feed", h.Feed)
}

// RegisterPostPages registers the post page routes
func (h *PostHandler) RegisterPostPages(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/home", h.HomePage, auth)
}

// HomePage renders the home timeline for the logged-in user
func (h *PostHandler) HomePage(c echo.Context) error {
	user := currentUser(c)
	return c.Render(http.StatusOK, "home.html", echo.Map{
		"User":        user,
		"Feed":        h.feed.ComposeFeed(c.Request().Context(), user.Username),
		"UnseenCount": h.notifications.CountUnseen(user.Username),
	})
}

// Feed returns the composed home timeline as JSON
func (h *PostHandler) Feed(c echo.Context) error {
	user := currentUser(c)
	entries := h.feed.ComposeFeed(c.Request().Context(), user.Username)
	return c.JSON(http.StatusOK, echo.Map{"posts": entries})
}

// CreatePost publishes a new post authored by the logged-in user
func (h *PostHandler) CreatePost(c echo.Context) error {
	user := currentUser(c)

	req := new(models.CreatePostRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	images := make([]string, 0, len(req.Images))
	for _, dataURI := range req.Images {
		url, err := h.blobs.SaveDataURI(ctx, dataURI, "posts/image.png")
		if err != nil {
			continue
		}
		images = append(images, url)
	}

	post := &models.Post{
		Title:          strings.TrimSpace(req.Title),
		Description:    services.Truncate(strings.TrimSpace(req.Description), 500),
		Images:         images,
		Links:          req.Links,
		Hashtags:       normalizeHashtags(req.Hashtags),
		AuthorUsername: user.Username,
		AuthorUID:      user.UID,
	}
	if err := h.posts.CreatePost(ctx, post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create post")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"uid":             post.UID(),
		"title":           post.Title,
		"description":     post.Description,
		"images":          post.Images,
		"links":           post.Links,
		"hashtags":        post.Hashtags,
		"author_username": post.AuthorUsername,
		"created_at":      post.CreatedAt,
	})
}

// normalizeHashtags lowercases tags, strips a leading '#' and drops
// empties and duplicates while preserving order.
func normalizeHashtags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := map[string]struct{}{}
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}
