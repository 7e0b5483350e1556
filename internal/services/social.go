package services

import (
	"fmt"
	"log/slog"

	"github.com/socialweb-app/backend/internal/models"
	"github.com/socialweb-app/backend/internal/repositories"
)

// SocialService manages the FOLLOWS graph between users.
type SocialService struct {
	users         repositories.UserRepository
	follows       repositories.FollowRepository
	notifications *NotificationService
}

// NewSocialService creates a new SocialService
func NewSocialService(
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
	notifications *NotificationService,
) *SocialService {
	return &SocialService{users: userRepo, follows: followRepo, notifications: notifications}
}

// ToggleFollow connects or disconnects the actor->target FOLLOWS edge and
// reports the resulting state. Following yourself, or a missing user on
// either side, is an invalid operation. A follow notification is emitted on
// connect only.
func (s *SocialService) ToggleFollow(actor *models.User, target string) (bool, error) {
	if actor.Username == target {
		return false, fmt.Errorf("%w: cannot follow yourself", ErrInvalidOperation)
	}
	targetUser, err := s.users.GetUserByUsername(target)
	if err != nil {
		return false, fmt.Errorf("%w: user %q", ErrInvalidOperation, target)
	}

	following, err := s.follows.IsFollowing(actor.Username, target)
	if err != nil {
		return false, err
	}

	if following {
		if err := s.follows.DeleteFollow(actor.Username, target); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.follows.CreateFollow(actor.Username, target); err != nil {
		return false, err
	}
	s.notifications.Record(targetUser.Username, targetUser.UID, actor,
		models.NotificationFollow, targetUser.UID, models.ElementAccount)
	return true, nil
}

// MutualFriends counts the users both a and b follow. Store failures degrade
// to zero.
func (s *SocialService) MutualFriends(a, b string) int {
	followingA, err := s.follows.GetFollowing(a)
	if err != nil {
		slog.Warn("mutual friends degraded", "user", a, "error", err)
		return 0
	}
	followingB, err := s.follows.GetFollowing(b)
	if err != nil {
		slog.Warn("mutual friends degraded", "user", b, "error", err)
		return 0
	}

	set := make(map[string]struct{}, len(followingA))
	for _, username := range followingA {
		set[username] = struct{}{}
	}
	mutual := 0
	for _, username := range followingB {
		if _, ok := set[username]; ok {
			mutual++
		}
	}
	return mutual
}

// Following returns the usernames the user follows; empty on store failure.
func (s *SocialService) Following(username string) []string {
	usernames, err := s.follows.GetFollowing(username)
	if err != nil {
		slog.Warn("following enumeration degraded", "user", username, "error", err)
		return []string{}
	}
	return usernames
}

// Followers returns the usernames following the user; empty on store failure.
func (s *SocialService) Followers(username string) []string {
	usernames, err := s.follows.GetFollowers(username)
	if err != nil {
		slog.Warn("followers enumeration degraded", "user", username, "error", err)
		return []string{}
	}
	return usernames
}
