package services

import (
	"context"
	"testing"

	"hangs.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuestService(t *testing.T) (testEnv, IGuestService) {
	t.Helper()
	env := newTestEnv(t)
	return env, NewGuestServiceWithDeps(env.events, env.identity)
}

func seedSharedEvent(t *testing.T, env testEnv) models.Event {
	t.Helper()
	event := models.Event{
		ID:       "1",
		Emoji:    "🍕",
		Title:    "Pizza Night",
		Date:     "2025-04-19T19:00",
		Location: "Roberta's",
		Vibe:     models.VibeChill,
		IsHost:   true,
		YourRsvp: models.RsvpStatusNoResponse,
	}
	require.NoError(t, env.events.SaveAll(context.Background(), []models.Event{event}))
	return event
}

func TestGetEventForGuestUnknownID(t *testing.T) {
	_, guests := newGuestService(t)

	_, err := guests.GetEventForGuest(context.Background(), "nope", "dev1")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestGetEventForGuestFirstVisit(t *testing.T) {
	env, guests := newGuestService(t)
	seedSharedEvent(t, env)

	view, err := guests.GetEventForGuest(context.Background(), "1", "dev1")
	require.NoError(t, err)

	assert.Equal(t, "Pizza Night", view.Event.Title)
	assert.Empty(t, view.DisplayName)
	assert.Equal(t, models.RsvpStatusNoResponse, view.YourStatus)
}

func TestSubmitGuestRsvpRequiresName(t *testing.T) {
	env, guests := newGuestService(t)
	seedSharedEvent(t, env)

	_, err := guests.SubmitGuestRsvp(context.Background(), "1", "dev1", "   ", models.RsvpStatusGoing, nil, nil)
	assert.ErrorIs(t, err, ErrGuestNameRequired)

	// İsimsiz deneme hiçbir şey yazmamış olmalı.
	stored, findErr := env.events.FindByID(context.Background(), "1")
	require.NoError(t, findErr)
	assert.Empty(t, stored.FriendsRsvp)
}

func TestSubmitGuestRsvpPersistsAndRemembersName(t *testing.T) {
	env, guests := newGuestService(t)
	seedSharedEvent(t, env)
	ctx := context.Background()

	note := "bringing dessert"
	updated, err := guests.SubmitGuestRsvp(ctx, "1", "dev1", " Sam ", models.RsvpStatusGoing, &note, nil)
	require.NoError(t, err)

	require.Len(t, updated.FriendsRsvp, 1)
	entry := updated.FriendsRsvp[0]
	assert.Equal(t, "Sam", entry.Name)
	assert.Equal(t, models.RsvpStatusGoing, entry.Status)
	assert.Equal(t, "bringing dessert", entry.Note)
	assert.Equal(t, "dev1", entry.UserIdentifier)
	// Misafir yanıtı owner alanlarına yazmaz.
	assert.Equal(t, models.RsvpStatusNoResponse, updated.YourRsvp)

	// Sonraki ziyarette isim ve yanıt hatırlanır.
	view, err := guests.GetEventForGuest(ctx, "1", "dev1")
	require.NoError(t, err)
	assert.Equal(t, "Sam", view.DisplayName)
	assert.Equal(t, models.RsvpStatusGoing, view.YourStatus)
	assert.Equal(t, "bringing dessert", view.YourNote)
}

func TestSubmitGuestRsvpRenameUpdatesSameEntry(t *testing.T) {
	env, guests := newGuestService(t)
	seedSharedEvent(t, env)
	ctx := context.Background()

	_, err := guests.SubmitGuestRsvp(ctx, "1", "dev1", "Sam", models.RsvpStatusMaybe, nil, nil)
	require.NoError(t, err)

	// Aynı cihaz farklı isimle tekrar yanıtlıyor: tek kayıt kalmalı.
	updated, err := guests.SubmitGuestRsvp(ctx, "1", "dev1", "Samantha", models.RsvpStatusGoing, nil, nil)
	require.NoError(t, err)

	require.Len(t, updated.FriendsRsvp, 1)
	assert.Equal(t, "Samantha", updated.FriendsRsvp[0].Name)
	assert.Equal(t, models.RsvpStatusGoing, updated.FriendsRsvp[0].Status)
}

func TestSubmitGuestRsvpTwoDevicesSameName(t *testing.T) {
	env, guests := newGuestService(t)
	seedSharedEvent(t, env)
	ctx := context.Background()

	_, err := guests.SubmitGuestRsvp(ctx, "1", "dev1", "Sam", models.RsvpStatusGoing, nil, nil)
	require.NoError(t, err)

	// İkinci cihaz aynı ismi kullanıyor; isim eşleşmesi mevcut kaydı bulur.
	updated, err := guests.SubmitGuestRsvp(ctx, "1", "dev2", "Sam", models.RsvpStatusNotGoing, nil, nil)
	require.NoError(t, err)

	require.Len(t, updated.FriendsRsvp, 1)
	assert.Equal(t, models.RsvpStatusNotGoing, updated.FriendsRsvp[0].Status)
}

func TestOwnerAndGuestShareOneCollection(t *testing.T) {
	env, guests := newGuestService(t)
	seedSharedEvent(t, env)
	ctx := context.Background()

	_, err := env.service.SubmitOwnerRsvp(ctx, "1", "owner-dev", models.RsvpStatusGoing, nil, nil)
	require.NoError(t, err)

	updated, err := guests.SubmitGuestRsvp(ctx, "1", "guest-dev", "Sam", models.RsvpStatusMaybe, nil, nil)
	require.NoError(t, err)

	// İki akış aynı kaydın üzerinde çalışır: owner aynası + misafir kaydı.
	require.Len(t, updated.FriendsRsvp, 2)
	assert.Equal(t, models.RsvpStatusGoing, updated.YourRsvp)
	assert.Equal(t, "You", updated.FriendsRsvp[0].Name)
	assert.Equal(t, "Sam", updated.FriendsRsvp[1].Name)
}

func TestSubmitGuestRsvpUnknownEvent(t *testing.T) {
	_, guests := newGuestService(t)

	_, err := guests.SubmitGuestRsvp(context.Background(), "nope", "dev1", "Sam", models.RsvpStatusGoing, nil, nil)
	assert.ErrorIs(t, err, ErrEventNotFound)
}
