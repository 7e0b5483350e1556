package services_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/socialweb-app/backend/internal/models"
	"github.com/socialweb-app/backend/internal/repositories"
	"github.com/socialweb-app/backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository implementations mirroring the store semantics the
// Postgres/Mongo implementations provide: idempotent edge writes, creation
// order on siblings, newest-first post listings.

type memUserRepo struct {
	users []*models.User
}

func (r *memUserRepo) CreateUser(user *models.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *memUserRepo) GetUserByUsername(username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memUserRepo) UpdateUser(user *models.User) error { return nil }

func (r *memUserRepo) SearchUsers(query string) ([]models.User, error) {
	var found []models.User
	for _, user := range r.users {
		if strings.Contains(strings.ToLower(user.Username), strings.ToLower(query)) {
			found = append(found, *user)
		}
	}
	return found, nil
}

type memFollowRepo struct {
	edges []models.Follow
}

func (r *memFollowRepo) CreateFollow(follower, following string) error {
	if ok, _ := r.IsFollowing(follower, following); ok {
		return nil
	}
	r.edges = append(r.edges, models.Follow{FollowerUsername: follower, FollowingUsername: following})
	return nil
}

func (r *memFollowRepo) DeleteFollow(follower, following string) error {
	kept := r.edges[:0]
	for _, edge := range r.edges {
		if edge.FollowerUsername != follower || edge.FollowingUsername != following {
			kept = append(kept, edge)
		}
	}
	r.edges = kept
	return nil
}

func (r *memFollowRepo) IsFollowing(follower, following string) (bool, error) {
	for _, edge := range r.edges {
		if edge.FollowerUsername == follower && edge.FollowingUsername == following {
			return true, nil
		}
	}
	return false, nil
}

func (r *memFollowRepo) GetFollowing(username string) ([]string, error) {
	var usernames []string
	for _, edge := range r.edges {
		if edge.FollowerUsername == username {
			usernames = append(usernames, edge.FollowingUsername)
		}
	}
	return usernames, nil
}

func (r *memFollowRepo) GetFollowers(username string) ([]string, error) {
	var usernames []string
	for _, edge := range r.edges {
		if edge.FollowingUsername == username {
			usernames = append(usernames, edge.FollowerUsername)
		}
	}
	return usernames, nil
}

type memPostRepo struct {
	posts []models.Post
}

func (r *memPostRepo) CreatePost(_ context.Context, post *models.Post) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	r.posts = append(r.posts, *post)
	return nil
}

func (r *memPostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	for i := range r.posts {
		if r.posts[i].UID() == id {
			post := r.posts[i]
			return &post, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memPostRepo) GetPostsByAuthor(_ context.Context, username string) ([]models.Post, error) {
	var posts []models.Post
	for _, post := range r.posts {
		if post.AuthorUsername == username {
			posts = append(posts, post)
		}
	}
	return sortedDesc(posts), nil
}

func (r *memPostRepo) GetAllPosts(_ context.Context) ([]models.Post, error) {
	return sortedDesc(append([]models.Post(nil), r.posts...)), nil
}

func sortedDesc(posts []models.Post) []models.Post {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

type memCommentRepo struct {
	comments []models.Comment
	nextID   uint
}

func (r *memCommentRepo) CreateComment(comment *models.Comment) error {
	r.nextID++
	comment.ID = r.nextID
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *memCommentRepo) GetCommentByUID(uid string) (*models.Comment, error) {
	for i := range r.comments {
		if r.comments[i].UID == uid {
			comment := r.comments[i]
			return &comment, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memCommentRepo) GetByPostID(postID string) ([]models.Comment, error) {
	var comments []models.Comment
	for _, comment := range r.comments {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (r *memCommentRepo) GetReplies(parentUID string) ([]models.Comment, error) {
	var comments []models.Comment
	for _, comment := range r.comments {
		if comment.ParentUID == parentUID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (r *memCommentRepo) CountByPostID(postID string) (int64, error) {
	comments, _ := r.GetByPostID(postID)
	return int64(len(comments)), nil
}

type memLikeRepo struct {
	likes map[string]map[string]struct{}
}

func newMemLikeRepo() *memLikeRepo {
	return &memLikeRepo{likes: map[string]map[string]struct{}{}}
}

func (r *memLikeRepo) AddLike(targetID, username string) error {
	if r.likes[targetID] == nil {
		r.likes[targetID] = map[string]struct{}{}
	}
	r.likes[targetID][username] = struct{}{}
	return nil
}

func (r *memLikeRepo) RemoveLike(targetID, username string) error {
	delete(r.likes[targetID], username)
	return nil
}

func (r *memLikeRepo) HasLike(targetID, username string) (bool, error) {
	_, ok := r.likes[targetID][username]
	return ok, nil
}

func (r *memLikeRepo) CountLikes(targetID string) (int64, error) {
	return int64(len(r.likes[targetID])), nil
}

type memNotificationRepo struct {
	notifications []models.Notification
}

func (r *memNotificationRepo) CreateNotification(notification *models.Notification) error {
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *memNotificationRepo) GetByRecipient(username string) ([]models.Notification, error) {
	var found []models.Notification
	for _, n := range r.notifications {
		if n.ToUsername == username {
			found = append(found, n)
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].CreatedAt.After(found[j].CreatedAt)
	})
	return found, nil
}

func (r *memNotificationRepo) MarkSeen(uids []string) error {
	for i := range r.notifications {
		for _, uid := range uids {
			if r.notifications[i].UID == uid {
				r.notifications[i].Seen = true
			}
		}
	}
	return nil
}

func (r *memNotificationRepo) CountUnseen(username string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.ToUsername == username && !n.Seen {
			count++
		}
	}
	return count, nil
}

type memMessageRepo struct {
	messages []models.Message
}

func (r *memMessageRepo) CreateMessage(message *models.Message) error {
	r.messages = append(r.messages, *message)
	return nil
}

func (r *memMessageRepo) GetBetween(a, b string) ([]models.Message, error) {
	var found []models.Message
	for _, m := range r.messages {
		if (m.SenderUsername == a && m.ReceiverUsername == b) ||
			(m.SenderUsername == b && m.ReceiverUsername == a) {
			found = append(found, m)
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].CreatedAt.Before(found[j].CreatedAt)
	})
	return found, nil
}

func (r *memMessageRepo) GetByUser(username string) ([]models.Message, error) {
	var found []models.Message
	for _, m := range r.messages {
		if m.SenderUsername == username || m.ReceiverUsername == username {
			found = append(found, m)
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].CreatedAt.Before(found[j].CreatedAt)
	})
	return found, nil
}

func (r *memMessageRepo) MarkSeen(uids []string) error {
	for i := range r.messages {
		for _, uid := range uids {
			if r.messages[i].UID == uid {
				r.messages[i].Seen = true
			}
		}
	}
	return nil
}

// testEnv wires every service over the in-memory repositories.
type testEnv struct {
	users         *memUserRepo
	follows       *memFollowRepo
	posts         *memPostRepo
	comments      *memCommentRepo
	postLikes     *memLikeRepo
	commentLikes  *memLikeRepo
	notifRepo     *memNotificationRepo
	messageRepo   *memMessageRepo
	feed          *services.FeedService
	social        *services.SocialService
	interactions  *services.InteractionService
	messaging     *services.MessagingService
	notifications *services.NotificationService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:        &memUserRepo{},
		follows:      &memFollowRepo{},
		posts:        &memPostRepo{},
		comments:     &memCommentRepo{},
		postLikes:    newMemLikeRepo(),
		commentLikes: newMemLikeRepo(),
		notifRepo:    &memNotificationRepo{},
		messageRepo:  &memMessageRepo{},
	}
	env.notifications = services.NewNotificationService(env.notifRepo, env.comments, env.posts, env.users)
	env.feed = services.NewFeedService(env.posts, env.follows, env.users, env.postLikes, env.comments)
	env.social = services.NewSocialService(env.users, env.follows, env.notifications)
	env.interactions = services.NewInteractionService(env.posts, env.comments, env.postLikes, env.commentLikes, env.users, env.notifications)
	env.messaging = services.NewMessagingService(env.messageRepo, env.users, env.follows)
	return env
}

func (e *testEnv) addUser(username string) *models.User {
	user := &models.User{
		UID:      uuid.NewString(),
		Username: username,
		Email:    username + "@example.com",
	}
	_ = e.users.CreateUser(user)
	return user
}

func (e *testEnv) addPost(author *models.User, title string, hashtags []string, createdAt time.Time) *models.Post {
	post := &models.Post{
		Title:          title,
		Hashtags:       hashtags,
		AuthorUsername: author.Username,
		AuthorUID:      author.UID,
		CreatedAt:      createdAt,
	}
	_ = e.posts.CreatePost(context.Background(), post)
	return post
}
