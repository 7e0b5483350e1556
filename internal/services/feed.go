package services

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/socialweb-app/backend/internal/models"
	"github.com/socialweb-app/backend/internal/repositories"
)

// FeedLimit caps the number of posts in a composed home feed.
const FeedLimit = 20

// FeedService composes the ranked home timeline for a viewer.
type FeedService struct {
	posts     repositories.PostRepository
	follows   repositories.FollowRepository
	users     repositories.UserRepository
	postLikes repositories.LikeRepository
	comments  repositories.CommentRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(
	postRepo repositories.PostRepository,
	followRepo repositories.FollowRepository,
	userRepo repositories.UserRepository,
	postLikeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
) *FeedService {
	return &FeedService{
		posts:     postRepo,
		follows:   followRepo,
		users:     userRepo,
		postLikes: postLikeRepo,
		comments:  commentRepo,
	}
}

// FeedEntry is a post annotated for the viewer.
type FeedEntry struct {
	models.Post
	UIDField      string `json:"uid"`
	AuthorAvatar  string `json:"author_avatar"`
	Likes         int64  `json:"likes"`
	Comments      int64  `json:"comments"`
	ViewerFollows bool   `json:"viewer_follows"`
	IsOwn         bool   `json:"is_own"`
}

// ComposeFeed builds the viewer's home timeline: posts by followed authors
// first, then posts sharing a hashtag with the viewer's own posts, then the
// rest, each group newest-first. The viewer's own posts are removed and the
// result is capped at FeedLimit. Store failures degrade to an empty feed.
func (s *FeedService) ComposeFeed(ctx context.Context, viewer string) []FeedEntry {
	posts, err := s.posts.GetAllPosts(ctx)
	if err != nil {
		slog.Warn("feed degraded", "viewer", viewer, "error", err)
		return []FeedEntry{}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	followingSet := map[string]struct{}{}
	for _, username := range s.followingOf(viewer) {
		followingSet[username] = struct{}{}
	}
	interests := s.viewerInterests(ctx, viewer)

	var followed, matched, rest []models.Post
	for _, post := range posts {
		if _, ok := followingSet[post.AuthorUsername]; ok {
			followed = append(followed, post)
			continue
		}
		if sharesHashtag(post.Hashtags, interests) {
			matched = append(matched, post)
			continue
		}
		rest = append(rest, post)
	}

	ranked := make([]models.Post, 0, len(posts))
	ranked = append(ranked, followed...)
	ranked = append(ranked, matched...)
	ranked = append(ranked, rest...)

	entries := make([]FeedEntry, 0, FeedLimit)
	avatarCache := map[string]string{}
	for _, post := range ranked {
		if post.AuthorUsername == viewer {
			continue
		}
		if len(entries) == FeedLimit {
			break
		}
		entries = append(entries, s.annotate(post, viewer, followingSet, avatarCache))
	}
	return entries
}

func (s *FeedService) annotate(post models.Post, viewer string, followingSet map[string]struct{}, avatarCache map[string]string) FeedEntry {
	likes, err := s.postLikes.CountLikes(post.UID())
	if err != nil {
		likes = 0
	}
	comments, err := s.comments.CountByPostID(post.UID())
	if err != nil {
		comments = 0
	}
	avatar, ok := avatarCache[post.AuthorUsername]
	if !ok {
		if author, err := s.users.GetUserByUsername(post.AuthorUsername); err == nil {
			avatar = author.AvatarURL
		}
		avatarCache[post.AuthorUsername] = avatar
	}
	_, follows := followingSet[post.AuthorUsername]
	return FeedEntry{
		Post:          post,
		UIDField:      post.UID(),
		AuthorAvatar:  avatar,
		Likes:         likes,
		Comments:      comments,
		ViewerFollows: follows,
		IsOwn:         post.AuthorUsername == viewer,
	}
}

func (s *FeedService) followingOf(viewer string) []string {
	usernames, err := s.follows.GetFollowing(viewer)
	if err != nil {
		slog.Warn("feed following lookup degraded", "viewer", viewer, "error", err)
		return nil
	}
	return usernames
}

// viewerInterests collects the lowercase hashtags used across the viewer's
// own posts. The viewer's posts never appear in their feed, but their
// hashtags still steer the interest-match group.
func (s *FeedService) viewerInterests(ctx context.Context, viewer string) map[string]struct{} {
	own, err := s.posts.GetPostsByAuthor(ctx, viewer)
	if err != nil {
		slog.Warn("feed interests lookup degraded", "viewer", viewer, "error", err)
		return map[string]struct{}{}
	}
	interests := map[string]struct{}{}
	for _, post := range own {
		for _, tag := range post.Hashtags {
			interests[strings.ToLower(tag)] = struct{}{}
		}
	}
	return interests
}

func sharesHashtag(hashtags []string, interests map[string]struct{}) bool {
	for _, tag := range hashtags {
		if _, ok := interests[strings.ToLower(tag)]; ok {
			return true
		}
	}
	return false
}
