package services_test

import (
	"testing"

	"github.com/socialweb-app/backend/internal/models"
	"github.com/socialweb-app/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFollow_SelfIsInvalid(t *testing.T) {
	env := newTestEnv()
	ana := env.addUser("ana")

	_, err := env.social.ToggleFollow(ana, "ana")
	assert.ErrorIs(t, err, services.ErrInvalidOperation)
}

func TestToggleFollow_MissingTargetIsInvalid(t *testing.T) {
	env := newTestEnv()
	ana := env.addUser("ana")

	_, err := env.social.ToggleFollow(ana, "nadie")
	assert.ErrorIs(t, err, services.ErrInvalidOperation)
}

func TestToggleFollow_RoundTrip(t *testing.T) {
	env := newTestEnv()
	ana := env.addUser("ana")
	env.addUser("beto")

	now, err := env.social.ToggleFollow(ana, "beto")
	require.NoError(t, err)
	assert.True(t, now)
	assert.Equal(t, []string{"beto"}, env.social.Following("ana"))
	assert.Equal(t, []string{"ana"}, env.social.Followers("beto"))

	now, err = env.social.ToggleFollow(ana, "beto")
	require.NoError(t, err)
	assert.False(t, now)
	assert.Empty(t, env.social.Following("ana"))
}

func TestToggleFollow_NotifiesOnConnectOnly(t *testing.T) {
	env := newTestEnv()
	ana := env.addUser("ana")
	env.addUser("beto")

	_, err := env.social.ToggleFollow(ana, "beto")
	require.NoError(t, err)
	_, err = env.social.ToggleFollow(ana, "beto")
	require.NoError(t, err)

	require.Len(t, env.notifRepo.notifications, 1)
	n := env.notifRepo.notifications[0]
	assert.Equal(t, models.NotificationFollow, n.Type)
	assert.Equal(t, "beto", n.ToUsername)
	assert.Equal(t, "ana", n.FromUsername)
	assert.Equal(t, models.ElementAccount, n.ElementType)
}

func TestMutualFriends(t *testing.T) {
	env := newTestEnv()
	ana := env.addUser("ana")
	beto := env.addUser("beto")
	env.addUser("carla")
	env.addUser("diego")

	mustFollow(t, env, ana, "carla")
	mustFollow(t, env, ana, "diego")
	mustFollow(t, env, beto, "carla")

	assert.Equal(t, 1, env.social.MutualFriends("ana", "beto"))
	assert.Equal(t, 0, env.social.MutualFriends("beto", "carla"))
}

func mustFollow(t *testing.T, env *testEnv, actor *models.User, target string) {
	t.Helper()
	now, err := env.social.ToggleFollow(actor, target)
	require.NoError(t, err)
	require.True(t, now)
}
