package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/socialweb-app/backend/internal/models"
	"github.com/socialweb-app/backend/internal/repositories"
)

// NotificationService records social events and resolves them into
// presentable entries for the recipient.
type NotificationService struct {
	notifications repositories.NotificationRepository
	comments      repositories.CommentRepository
	posts         repositories.PostRepository
	users         repositories.UserRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notifRepo repositories.NotificationRepository,
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
) *NotificationService {
	return &NotificationService{
		notifications: notifRepo,
		comments:      commentRepo,
		posts:         postRepo,
		users:         userRepo,
	}
}

// Record appends a notification for the recipient. Best-effort: a storage
// failure is logged and swallowed so it never blocks the triggering action.
// Self-notifications are dropped.
func (s *NotificationService) Record(toUsername, toUID string, from *models.User, ntype, targetUID, elementType string) {
	if toUsername == "" || toUsername == from.Username {
		return
	}
	notification := &models.Notification{
		UID:          uuid.NewString(),
		ToUsername:   toUsername,
		ToUID:        toUID,
		FromUsername: from.Username,
		FromUID:      from.UID,
		Type:         ntype,
		TargetUID:    targetUID,
		ElementType:  elementType,
		CreatedAt:    time.Now(),
	}
	if err := s.notifications.CreateNotification(notification); err != nil {
		slog.Warn("notification dropped", "type", ntype, "to", toUsername, "error", err)
	}
}

// NotificationView is a notification resolved for display.
type NotificationView struct {
	models.Notification
	Icon        string `json:"icon"`
	Text        string `json:"text"`
	CTA         string `json:"cta,omitempty"`
	RootPostUID string `json:"root_post_uid,omitempty"`
	ActorAvatar string `json:"actor_avatar,omitempty"`
}

// ListFor returns the viewer's notifications, newest first, and flips the
// seen flag on every returned unseen one. The returned views keep the
// pre-flip seen value so unread entries can be highlighted once.
func (s *NotificationService) ListFor(ctx context.Context, viewer string) []NotificationView {
	notifications, err := s.notifications.GetByRecipient(viewer)
	if err != nil {
		slog.Warn("notification list degraded", "viewer", viewer, "error", err)
		return []NotificationView{}
	}

	var unseen []string
	avatarCache := map[string]string{}
	views := make([]NotificationView, 0, len(notifications))
	for _, n := range notifications {
		if !n.Seen {
			unseen = append(unseen, n.UID)
		}
		view := NotificationView{Notification: n}
		s.present(ctx, &view)
		if avatar, ok := avatarCache[n.FromUsername]; ok {
			view.ActorAvatar = avatar
		} else if actor, err := s.users.GetUserByUsername(n.FromUsername); err == nil {
			avatarCache[n.FromUsername] = actor.AvatarURL
			view.ActorAvatar = actor.AvatarURL
		}
		views = append(views, view)
	}

	if err := s.notifications.MarkSeen(unseen); err != nil {
		slog.Warn("notification mark-seen failed", "viewer", viewer, "error", err)
	}
	return views
}

// CountUnseen returns the viewer's unread notification count, degrading to
// zero when the store is unavailable.
func (s *NotificationService) CountUnseen(viewer string) int64 {
	count, err := s.notifications.CountUnseen(viewer)
	if err != nil {
		return 0
	}
	return count
}

func (s *NotificationService) present(ctx context.Context, view *NotificationView) {
	switch view.Type {
	case models.NotificationFollow:
		view.Icon = "👤"
		view.Text = view.FromUsername + " empezó a seguirte"
		view.CTA = "follow"
	case models.NotificationLikePost:
		view.Icon = "❤️"
		view.Text = view.FromUsername + " le dio me gusta a tu publicación"
		view.CTA = "view_post"
	case models.NotificationLikeComment:
		view.Icon = "❤️"
		view.Text = view.FromUsername + " le dio me gusta a tu comentario"
		view.CTA = "view_comment"
	case models.NotificationCommentPost:
		view.Icon = "💬"
		view.Text = view.FromUsername + " comentó tu publicación"
		view.CTA = "view_post"
	case models.NotificationReplyComment:
		view.Icon = "💬"
		view.Text = view.FromUsername + " respondió a tu comentario"
		view.CTA = "view_comment"
	default:
		view.Icon = "🔔"
		view.Text = view.FromUsername
	}

	switch view.ElementType {
	case models.ElementPost:
		view.RootPostUID = view.TargetUID
	case models.ElementComment:
		comment, err := s.comments.GetCommentByUID(view.TargetUID)
		if err != nil {
			return
		}
		if post, err := resolveRootPost(ctx, s.comments, s.posts, comment); err == nil && post != nil {
			view.RootPostUID = post.UID()
		}
	}
}
