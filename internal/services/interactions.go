package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/socialweb-app/backend/internal/models"
	"github.com/socialweb-app/backend/internal/repositories"
)

// Maximum lengths silently applied to free text, matching the source system.
const (
	maxCommentLen = 500
	maxMessageLen = 2000
	maxBioLen     = 200
)

// InteractionService handles likes and the comment/reply tree.
type InteractionService struct {
	posts         repositories.PostRepository
	comments      repositories.CommentRepository
	postLikes     repositories.LikeRepository
	commentLikes  repositories.LikeRepository
	users         repositories.UserRepository
	notifications *NotificationService
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	postLikeRepo repositories.LikeRepository,
	commentLikeRepo repositories.LikeRepository,
	userRepo repositories.UserRepository,
	notifications *NotificationService,
) *InteractionService {
	return &InteractionService{
		posts:         postRepo,
		comments:      commentRepo,
		postLikes:     postLikeRepo,
		commentLikes:  commentLikeRepo,
		users:         userRepo,
		notifications: notifications,
	}
}

// LikeResult reports the state after a like toggle.
type LikeResult struct {
	Liked bool
	Count int64
}

// TogglePostLike connects or disconnects the actor's like on a post and
// returns the resulting state with the post-toggle like count.
func (s *InteractionService) TogglePostLike(ctx context.Context, actor *models.User, postID string) (LikeResult, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return LikeResult{}, err
	}
	result, err := toggleLike(s.postLikes, postID, actor.Username)
	if err != nil {
		return LikeResult{}, err
	}
	if result.Liked {
		s.notifications.Record(post.AuthorUsername, post.AuthorUID, actor,
			models.NotificationLikePost, post.UID(), models.ElementPost)
	}
	return result, nil
}

// ToggleCommentLike connects or disconnects the actor's like on a comment.
func (s *InteractionService) ToggleCommentLike(actor *models.User, commentUID string) (LikeResult, error) {
	comment, err := s.comments.GetCommentByUID(commentUID)
	if err != nil {
		return LikeResult{}, err
	}
	result, err := toggleLike(s.commentLikes, commentUID, actor.Username)
	if err != nil {
		return LikeResult{}, err
	}
	if result.Liked {
		s.notifications.Record(comment.AuthorUsername, comment.AuthorUID, actor,
			models.NotificationLikeComment, comment.UID, models.ElementComment)
	}
	return result, nil
}

func toggleLike(likes repositories.LikeRepository, targetID, username string) (LikeResult, error) {
	liked, err := likes.HasLike(targetID, username)
	if err != nil {
		return LikeResult{}, err
	}
	if liked {
		err = likes.RemoveLike(targetID, username)
	} else {
		err = likes.AddLike(targetID, username)
	}
	if err != nil {
		return LikeResult{}, err
	}
	count, err := likes.CountLikes(targetID)
	if err != nil {
		return LikeResult{}, err
	}
	return LikeResult{Liked: !liked, Count: count}, nil
}

// AddComment attaches a top-level comment to a post and notifies the post
// author. Text is trimmed and silently truncated to 500 characters.
func (s *InteractionService) AddComment(ctx context.Context, actor *models.User, postID, text string) (*models.Comment, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	text, err = normalizeText(text, maxCommentLen)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UID:            uuid.NewString(),
		PostID:         post.UID(),
		Text:           text,
		AuthorUsername: actor.Username,
		AuthorUID:      actor.UID,
		CreatedAt:      time.Now(),
	}
	if err := s.comments.CreateComment(comment); err != nil {
		return nil, err
	}
	s.notifications.Record(post.AuthorUsername, post.AuthorUID, actor,
		models.NotificationCommentPost, comment.UID, models.ElementComment)
	return comment, nil
}

// AddReply attaches a reply to an existing comment and notifies its author.
func (s *InteractionService) AddReply(actor *models.User, parentUID, text string) (*models.Comment, error) {
	parent, err := s.comments.GetCommentByUID(parentUID)
	if err != nil {
		return nil, err
	}
	text, err = normalizeText(text, maxCommentLen)
	if err != nil {
		return nil, err
	}

	reply := &models.Comment{
		UID:            uuid.NewString(),
		ParentUID:      parent.UID,
		Text:           text,
		AuthorUsername: actor.Username,
		AuthorUID:      actor.UID,
		CreatedAt:      time.Now(),
	}
	if err := s.comments.CreateComment(reply); err != nil {
		return nil, err
	}
	s.notifications.Record(parent.AuthorUsername, parent.AuthorUID, actor,
		models.NotificationReplyComment, reply.UID, models.ElementComment)
	return reply, nil
}

// ResolveRootPost walks the reply chain up to the post owning the comment.
// Returns nil without error when the chain is broken (inconsistent store).
func (s *InteractionService) ResolveRootPost(ctx context.Context, comment *models.Comment) (*models.Post, error) {
	return resolveRootPost(ctx, s.comments, s.posts, comment)
}

func resolveRootPost(ctx context.Context, comments repositories.CommentRepository, posts repositories.PostRepository, comment *models.Comment) (*models.Post, error) {
	visited := map[string]struct{}{}
	current := comment
	for {
		if current.PostID != "" {
			post, err := posts.GetPostByID(ctx, current.PostID)
			if err == ErrNotFound {
				return nil, nil
			}
			return post, err
		}
		if current.ParentUID == "" {
			return nil, nil
		}
		if _, seen := visited[current.UID]; seen {
			return nil, nil
		}
		visited[current.UID] = struct{}{}

		parent, err := comments.GetCommentByUID(current.ParentUID)
		if err == ErrNotFound {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		current = parent
	}
}

// CommentNode is a comment resolved for display with its reply subtree.
// Siblings are ordered by creation time ascending.
type CommentNode struct {
	UID            string        `json:"uid"`
	AuthorUsername string        `json:"author_username"`
	Text           string        `json:"text"`
	Likes          int64         `json:"likes"`
	AuthorAvatar   string        `json:"author_avatar"`
	CreatedAt      time.Time     `json:"created_at"`
	Replies        []CommentNode `json:"replies"`
}

// CommentTree builds the full nested comment tree of a post.
func (s *InteractionService) CommentTree(ctx context.Context, postID string) ([]CommentNode, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	topLevel, err := s.comments.GetByPostID(post.UID())
	if err != nil {
		return nil, err
	}
	avatarCache := map[string]string{}
	return s.buildNodes(topLevel, avatarCache)
}

func (s *InteractionService) buildNodes(comments []models.Comment, avatarCache map[string]string) ([]CommentNode, error) {
	nodes := make([]CommentNode, 0, len(comments))
	for _, comment := range comments {
		likes, err := s.commentLikes.CountLikes(comment.UID)
		if err != nil {
			return nil, err
		}
		replies, err := s.comments.GetReplies(comment.UID)
		if err != nil {
			return nil, err
		}
		children, err := s.buildNodes(replies, avatarCache)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, CommentNode{
			UID:            comment.UID,
			AuthorUsername: comment.AuthorUsername,
			Text:           comment.Text,
			Likes:          likes,
			AuthorAvatar:   s.avatarFor(comment.AuthorUsername, avatarCache),
			CreatedAt:      comment.CreatedAt,
			Replies:        children,
		})
	}
	return nodes, nil
}

func (s *InteractionService) avatarFor(username string, cache map[string]string) string {
	if avatar, ok := cache[username]; ok {
		return avatar
	}
	avatar := ""
	if user, err := s.users.GetUserByUsername(username); err == nil {
		avatar = user.AvatarURL
	}
	cache[username] = avatar
	return avatar
}

// normalizeText trims the text, rejects empty input and silently truncates
// to the given rune limit.
func normalizeText(text string, limit int) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", NewValidationError("El texto no puede estar vacío.")
	}
	return Truncate(text, limit), nil
}

// Truncate cuts the string to at most limit runes.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
