package services_test

import (
	"strings"
	"testing"
	"time"

	"github.com/socialweb-app/backend/internal/models"
	"github.com/socialweb-app/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage_Validation(t *testing.T) {
	env := newTestEnv()
	ana := env.addUser("ana")
	env.addUser("beto")

	_, err := env.messaging.SendMessage(ana, "beto", "", "")
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)

	message, err := env.messaging.SendMessage(ana, "beto", "", "/media/foto.png")
	require.NoError(t, err)
	assert.Equal(t, "/media/foto.png", message.ImageURL)
	assert.Empty(t, message.Text)
}

func TestSendMessage_TruncatesText(t *testing.T) {
	env := newTestEnv()
	ana := env.addUser("ana")
	env.addUser("beto")

	message, err := env.messaging.SendMessage(ana, "beto", strings.Repeat("x", 2500), "")
	require.NoError(t, err)
	assert.Len(t, message.Text, 2000)
}

func TestSendMessage_MissingReceiver(t *testing.T) {
	env := newTestEnv()
	ana := env.addUser("ana")

	_, err := env.messaging.SendMessage(ana, "nadie", "hola", "")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetThread_MergesAndMarksSeenOnce(t *testing.T) {
	env := newTestEnv()
	ana := env.addUser("ana")
	beto := env.addUser("beto")

	_, err := env.messaging.SendMessage(ana, "beto", "Hola", "")
	require.NoError(t, err)
	_, err = env.messaging.SendMessage(beto, "ana", "Qué tal", "")
	require.NoError(t, err)

	// As beto: only ana's message is addressed to him and flips to seen.
	thread, err := env.messaging.GetThread(beto, "ana")
	require.NoError(t, err)
	require.Len(t, thread, 2)
	assert.Equal(t, "Hola", thread[0].Text)
	assert.True(t, thread[0].Seen)
	assert.False(t, thread[1].Seen)

	stored, _ := env.messageRepo.GetBetween("ana", "beto")
	assert.True(t, stored[0].Seen)
	assert.False(t, stored[1].Seen)

	// Second fetch is a no-op on state.
	again, err := env.messaging.GetThread(beto, "ana")
	require.NoError(t, err)
	assert.True(t, again[0].Seen)
	assert.False(t, again[1].Seen)
}

func TestThreadSummary_FollowedFirstThenPartners(t *testing.T) {
	env := newTestEnv()
	ana := env.addUser("ana")
	beto := env.addUser("beto")
	carla := env.addUser("carla")
	env.addUser("diego")

	mustFollow(t, env, ana, "diego")
	mustFollow(t, env, ana, "beto")

	_, err := env.messaging.SendMessage(carla, "ana", "hola ana", "")
	require.NoError(t, err)
	_, err = env.messaging.SendMessage(beto, "ana", "yo también", "")
	require.NoError(t, err)

	summary := env.messaging.ThreadSummary(ana)
	require.Len(t, summary, 3)
	// Following order first, then carla as an extra partner.
	assert.Equal(t, "diego", summary[0].Partner)
	assert.Equal(t, "beto", summary[1].Partner)
	assert.Equal(t, "carla", summary[2].Partner)

	assert.Equal(t, 0, summary[0].UnreadCount)
	assert.Equal(t, 1, summary[1].UnreadCount)
	assert.Equal(t, 1, summary[2].UnreadCount)
	assert.NotEmpty(t, summary[2].LastUnreadAge)
}

func TestThreadSummary_UnreadAges(t *testing.T) {
	env := newTestEnv()
	ana := env.addUser("ana")
	env.addUser("beto")
	env.addUser("carla")
	env.addUser("diego")

	now := time.Now()
	seed := func(sender *models.User, age time.Duration) {
		env.messageRepo.messages = append(env.messageRepo.messages, models.Message{
			UID:              sender.Username + "-msg",
			SenderUsername:   sender.Username,
			SenderUID:        sender.UID,
			ReceiverUsername: "ana",
			ReceiverUID:      ana.UID,
			Text:             "hola",
			CreatedAt:        now.Add(-age),
		})
	}
	beto, _ := env.users.GetUserByUsername("beto")
	carla, _ := env.users.GetUserByUsername("carla")
	diego, _ := env.users.GetUserByUsername("diego")
	seed(beto, 49*time.Hour)
	seed(carla, 3*time.Hour)
	seed(diego, 20*time.Second)

	byPartner := map[string]services.ThreadSummaryEntry{}
	for _, entry := range env.messaging.ThreadSummary(ana) {
		byPartner[entry.Partner] = entry
	}
	assert.Equal(t, "2d", byPartner["beto"].LastUnreadAge)
	assert.Equal(t, "3h", byPartner["carla"].LastUnreadAge)
	assert.Equal(t, "1m", byPartner["diego"].LastUnreadAge)
}
