package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/socialweb-app/backend/internal/models"
	"github.com/socialweb-app/backend/internal/repositories"
)

// MessagingService handles direct messages between users.
type MessagingService struct {
	messages repositories.MessageRepository
	users    repositories.UserRepository
	follows  repositories.FollowRepository
}

// NewMessagingService creates a new MessagingService
func NewMessagingService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
) *MessagingService {
	return &MessagingService{messages: messageRepo, users: userRepo, follows: followRepo}
}

// SendMessage stores a directed message. At least one of text or image URL
// must be present; text is silently truncated to 2000 characters.
func (s *MessagingService) SendMessage(sender *models.User, receiverUsername, text, imageURL string) (*models.Message, error) {
	receiver, err := s.users.GetUserByUsername(receiverUsername)
	if err != nil {
		return nil, err
	}
	if text == "" && imageURL == "" {
		return nil, NewValidationError("El mensaje debe incluir texto o una imagen.")
	}

	message := &models.Message{
		UID:              uuid.NewString(),
		SenderUsername:   sender.Username,
		SenderUID:        sender.UID,
		ReceiverUsername: receiver.Username,
		ReceiverUID:      receiver.UID,
		Text:             Truncate(text, maxMessageLen),
		ImageURL:         imageURL,
		CreatedAt:        time.Now(),
	}
	if err := s.messages.CreateMessage(message); err != nil {
		return nil, err
	}
	return message, nil
}

// GetThread returns the merged two-direction conversation between the viewer
// and the partner, ascending by creation time. Every returned message
// addressed to the viewer is marked seen; re-fetching changes nothing.
func (s *MessagingService) GetThread(viewer *models.User, partnerUsername string) ([]models.Message, error) {
	if _, err := s.users.GetUserByUsername(partnerUsername); err != nil {
		return nil, err
	}
	messages, err := s.messages.GetBetween(viewer.Username, partnerUsername)
	if err != nil {
		return nil, err
	}

	var justSeen []string
	for i := range messages {
		if messages[i].ReceiverUsername == viewer.Username && !messages[i].Seen {
			justSeen = append(justSeen, messages[i].UID)
			messages[i].Seen = true
		}
	}
	if err := s.messages.MarkSeen(justSeen); err != nil {
		slog.Warn("thread mark-seen failed", "viewer", viewer.Username, "error", err)
	}
	return messages, nil
}

// ThreadSummaryEntry describes one chat partner in the sidebar listing.
type ThreadSummaryEntry struct {
	Partner       string `json:"partner"`
	Avatar        string `json:"avatar"`
	UnreadCount   int    `json:"unread_count"`
	LastUnreadAge string `json:"last_unread_age,omitempty"`
}

// ThreadSummary lists everyone the viewer follows, then every other user the
// viewer has exchanged messages with (first-seen order), each with an unread
// count and the coarse age of the newest unread message. Store failures
// degrade to an empty listing.
func (s *MessagingService) ThreadSummary(viewer *models.User) []ThreadSummaryEntry {
	following, err := s.follows.GetFollowing(viewer.Username)
	if err != nil {
		slog.Warn("thread summary degraded", "viewer", viewer.Username, "error", err)
		following = nil
	}
	messages, err := s.messages.GetByUser(viewer.Username)
	if err != nil {
		slog.Warn("thread summary degraded", "viewer", viewer.Username, "error", err)
		messages = nil
	}

	type unreadInfo struct {
		count  int
		newest time.Time
	}
	unread := map[string]unreadInfo{}
	var partners []string
	seen := map[string]struct{}{}
	for _, username := range following {
		partners = append(partners, username)
		seen[username] = struct{}{}
	}
	for _, message := range messages {
		partner := message.SenderUsername
		if partner == viewer.Username {
			partner = message.ReceiverUsername
		}
		if _, ok := seen[partner]; !ok {
			partners = append(partners, partner)
			seen[partner] = struct{}{}
		}
		if message.ReceiverUsername == viewer.Username && !message.Seen {
			info := unread[partner]
			info.count++
			if message.CreatedAt.After(info.newest) {
				info.newest = message.CreatedAt
			}
			unread[partner] = info
		}
	}

	entries := make([]ThreadSummaryEntry, 0, len(partners))
	for _, partner := range partners {
		entry := ThreadSummaryEntry{Partner: partner}
		if user, err := s.users.GetUserByUsername(partner); err == nil {
			entry.Avatar = user.AvatarURL
		}
		if info, ok := unread[partner]; ok {
			entry.UnreadCount = info.count
			entry.LastUnreadAge = coarseAge(time.Since(info.newest))
		}
		entries = append(entries, entry)
	}
	return entries
}

// coarseAge renders a duration as "{days}d", "{hours}h" or "{minutes}m",
// never below one minute.
func coarseAge(d time.Duration) string {
	if days := int(d.Hours()) / 24; days >= 1 {
		return fmt.Sprintf("%dd", days)
	}
	if hours := int(d.Hours()); hours >= 1 {
		return fmt.Sprintf("%dh", hours)
	}
	minutes := int(d.Minutes())
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%dm", minutes)
}
