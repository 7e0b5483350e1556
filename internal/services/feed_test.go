package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/socialweb-app/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeFeed_FollowedAuthorsRankFirst(t *testing.T) {
	env := newTestEnv()
	ana := env.addUser("ana")
	beto := env.addUser("beto")
	carla := env.addUser("carla")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	// carla's post is newer but ana only follows beto.
	env.addPost(beto, "de beto", nil, base)
	env.addPost(carla, "de carla", nil, base.Add(time.Hour))

	_, err := env.social.ToggleFollow(ana, "beto")
	require.NoError(t, err)

	feed := env.feed.ComposeFeed(context.Background(), "ana")
	require.Len(t, feed, 2)
	assert.Equal(t, "de beto", feed[0].Title)
	assert.True(t, feed[0].ViewerFollows)
	assert.Equal(t, "de carla", feed[1].Title)
	assert.False(t, feed[1].ViewerFollows)
}

func TestComposeFeed_HashtagInterestGroupBeatsRest(t *testing.T) {
	env := newTestEnv()
	ana := env.addUser("ana")
	beto := env.addUser("beto")
	carla := env.addUser("carla")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	env.addPost(ana, "mis vacaciones", []string{"Viaje"}, base)
	env.addPost(beto, "sin tags", nil, base.Add(2*time.Hour))
	env.addPost(carla, "playa", []string{"viaje"}, base.Add(time.Hour))

	feed := env.feed.ComposeFeed(context.Background(), "ana")
	require.Len(t, feed, 2)
	// carla's older post wins by case-insensitive hashtag overlap with
	// ana's own posts; ana's own post is excluded.
	assert.Equal(t, "playa", feed[0].Title)
	assert.Equal(t, "sin tags", feed[1].Title)
}

func TestComposeFeed_NoDuplicatesAndCapped(t *testing.T) {
	env := newTestEnv()
	ana := env.addUser("ana")
	beto := env.addUser("beto")
	_, err := env.social.ToggleFollow(ana, "beto")
	require.NoError(t, err)

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		env.addPost(beto, fmt.Sprintf("post %d", i), []string{"viaje"}, base.Add(time.Duration(i)*time.Minute))
	}

	feed := env.feed.ComposeFeed(context.Background(), "ana")
	require.Len(t, feed, services.FeedLimit)

	seen := map[string]struct{}{}
	for _, entry := range feed {
		_, dup := seen[entry.UIDField]
		require.False(t, dup, "post %s appeared twice", entry.UIDField)
		seen[entry.UIDField] = struct{}{}
	}
}

func TestComposeFeed_ExcludesOwnPosts(t *testing.T) {
	env := newTestEnv()
	ana := env.addUser("ana")
	env.addPost(ana, "propio", []string{"viaje"}, time.Now())

	feed := env.feed.ComposeFeed(context.Background(), "ana")
	assert.Empty(t, feed)
}

func TestComposeFeed_FollowScenario(t *testing.T) {
	// ana follows beto; beto posts "Hola" with #viaje; ana has no posts.
	env := newTestEnv()
	ana := env.addUser("ana")
	beto := env.addUser("beto")

	now, err := env.social.ToggleFollow(ana, "beto")
	require.NoError(t, err)
	require.True(t, now)

	env.addPost(beto, "Hola", []string{"viaje"}, time.Now())

	feed := env.feed.ComposeFeed(context.Background(), "ana")
	require.Len(t, feed, 1)
	assert.Equal(t, "Hola", feed[0].Title)
	assert.True(t, feed[0].ViewerFollows)
	assert.False(t, feed[0].IsOwn)
}

func TestComposeFeed_AnnotatesCounts(t *testing.T) {
	env := newTestEnv()
	ana := env.addUser("ana")
	beto := env.addUser("beto")
	beto.AvatarURL = "/media/beto.png"
	post := env.addPost(beto, "Hola", nil, time.Now())

	_, err := env.interactions.TogglePostLike(context.Background(), ana, post.UID())
	require.NoError(t, err)
	_, err = env.interactions.AddComment(context.Background(), ana, post.UID(), "buena foto")
	require.NoError(t, err)

	feed := env.feed.ComposeFeed(context.Background(), "ana")
	require.Len(t, feed, 1)
	assert.Equal(t, int64(1), feed[0].Likes)
	assert.Equal(t, int64(1), feed[0].Comments)
	assert.Equal(t, "/media/beto.png", feed[0].AuthorAvatar)
}
