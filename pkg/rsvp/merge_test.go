package rsvp

import (
	"testing"
	"time"

	"hangs.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func ownerResponder() models.Responder {
	return models.Responder{DisplayName: "You", IsLocalOwner: true}
}

func guestResponder(name, id string) models.Responder {
	return models.Responder{DisplayName: name, PseudoID: id}
}

func baseEvent() models.Event {
	return models.Event{
		ID:       "1",
		Emoji:    "🍕",
		Title:    "Pizza Night",
		Date:     "2025-04-19T19:00",
		Location: "Roberta's",
		Vibe:     models.VibeChill,
		IsHost:   true,
		YourRsvp: models.RsvpStatusNoResponse,
	}
}

func TestApplyOwnerFirstResponse(t *testing.T) {
	event := baseEvent()

	updated := Apply(event, ownerResponder(), models.RsvpStatusGoing, strPtr("bringing chips"), nil, now)

	assert.Equal(t, models.RsvpStatusGoing, updated.YourRsvp)
	assert.Equal(t, "bringing chips", updated.RsvpNote)
	require.Len(t, updated.FriendsRsvp, 1)
	entry := updated.FriendsRsvp[0]
	assert.Equal(t, "You", entry.Name)
	assert.Equal(t, models.RsvpStatusGoing, entry.Status)
	assert.Equal(t, "bringing chips", entry.Note)

	// Girdi event'i değişmemiş olmalı.
	assert.Empty(t, event.FriendsRsvp)
	assert.Equal(t, models.RsvpStatusNoResponse, event.YourRsvp)
}

func TestApplyGuestNewEntry(t *testing.T) {
	updated := Apply(baseEvent(), guestResponder("Sam", "abc123"), models.RsvpStatusMaybe, nil, nil, now)

	require.Len(t, updated.FriendsRsvp, 1)
	entry := updated.FriendsRsvp[0]
	assert.Equal(t, "Sam", entry.Name)
	assert.Equal(t, models.RsvpStatusMaybe, entry.Status)
	assert.Empty(t, entry.Note)
	assert.Equal(t, "abc123", entry.UserIdentifier)

	// Misafir yanıtı owner alanlarına dokunmaz.
	assert.Equal(t, models.RsvpStatusNoResponse, updated.YourRsvp)
}

func TestApplyGuestRenameKeepsSingleEntry(t *testing.T) {
	event := Apply(baseEvent(), guestResponder("Sam", "abc123"), models.RsvpStatusMaybe, nil, nil, now)

	// Aynı identifier, yeni görünen isim: kayıt yerinde güncellenir.
	updated := Apply(event, guestResponder("Samantha", "abc123"), models.RsvpStatusGoing, nil, nil, now.Add(time.Hour))

	require.Len(t, updated.FriendsRsvp, 1)
	entry := updated.FriendsRsvp[0]
	assert.Equal(t, "Samantha", entry.Name)
	assert.Equal(t, models.RsvpStatusGoing, entry.Status)
	assert.Equal(t, "abc123", entry.UserIdentifier)
}

func TestApplyIdentifierPrecedesNameMatch(t *testing.T) {
	event := baseEvent()
	event.FriendsRsvp = []models.RsvpEntry{
		{Name: "Sam", Status: models.RsvpStatusGoing}, // davetli, identifier'sız
		{Name: "Old Sam", Status: models.RsvpStatusMaybe, UserIdentifier: "abc"},
	}

	updated := Apply(event, guestResponder("Sam", "abc"), models.RsvpStatusNotGoing, nil, nil, now)

	// "Sam" isim eşleşmesine rağmen identifier'lı kayıt güncellenmeli.
	require.Len(t, updated.FriendsRsvp, 2)
	assert.Equal(t, models.RsvpStatusGoing, updated.FriendsRsvp[0].Status)
	assert.Equal(t, "Sam", updated.FriendsRsvp[1].Name)
	assert.Equal(t, models.RsvpStatusNotGoing, updated.FriendsRsvp[1].Status)
}

func TestApplyIsIdempotent(t *testing.T) {
	first := Apply(baseEvent(), guestResponder("Sam", "abc"), models.RsvpStatusGoing, strPtr("see you"), nil, now)
	second := Apply(first, guestResponder("Sam", "abc"), models.RsvpStatusGoing, strPtr("see you"), nil, now.Add(time.Minute))

	require.Len(t, second.FriendsRsvp, 1)
	// Zaman damgası dışında kayıt içeriği aynı kalır.
	firstEntry, secondEntry := first.FriendsRsvp[0], second.FriendsRsvp[0]
	firstEntry.LastUpdated, secondEntry.LastUpdated = "", ""
	assert.Equal(t, firstEntry, secondEntry)
}

func TestApplyNoEntryForUntouchedInvitee(t *testing.T) {
	updated := Apply(baseEvent(), guestResponder("Sam", "abc"), models.RsvpStatusNoResponse, nil, nil, now)
	assert.Empty(t, updated.FriendsRsvp)

	// Not varsa no_response bile kayıt açar.
	withNote := Apply(baseEvent(), guestResponder("Sam", "abc"), models.RsvpStatusNoResponse, strPtr("thinking about it"), nil, now)
	assert.Len(t, withNote.FriendsRsvp, 1)
}

func TestApplyAbsentNotePreservesPrior(t *testing.T) {
	event := Apply(baseEvent(), guestResponder("Sam", "abc"), models.RsvpStatusMaybe, strPtr("might be late"), nil, now)

	updated := Apply(event, guestResponder("Sam", "abc"), models.RsvpStatusGoing, nil, nil, now.Add(time.Hour))
	assert.Equal(t, "might be late", updated.FriendsRsvp[0].Note)

	// Boş string'e işaret eden pointer açık temizlemedir.
	cleared := Apply(event, guestResponder("Sam", "abc"), models.RsvpStatusGoing, strPtr(""), nil, now.Add(time.Hour))
	assert.Empty(t, cleared.FriendsRsvp[0].Note)
}

func TestApplyOwnerMirrorsNeverDiverge(t *testing.T) {
	event := baseEvent()
	statuses := []models.RsvpStatus{
		models.RsvpStatusGoing,
		models.RsvpStatusMaybe,
		models.RsvpStatusNotGoing,
		models.RsvpStatusGoing,
	}

	for _, status := range statuses {
		event = Apply(event, ownerResponder(), status, nil, nil, now)

		idx := ResolveEntry(event.FriendsRsvp, ownerResponder())
		require.GreaterOrEqual(t, idx, 0)
		assert.Equal(t, event.YourRsvp, event.FriendsRsvp[idx].Status)
	}
}

func TestApplyPhotoLinkOnlyWhenDefined(t *testing.T) {
	event := Apply(baseEvent(), ownerResponder(), models.RsvpStatusGoing, nil, strPtr("https://photos.example/a"), now)
	assert.Equal(t, "https://photos.example/a", event.PhotoLink)
	assert.Equal(t, "https://photos.example/a", event.FriendsRsvp[0].PhotoLink)

	updated := Apply(event, ownerResponder(), models.RsvpStatusGoing, nil, nil, now.Add(time.Hour))
	assert.Equal(t, "https://photos.example/a", updated.PhotoLink)
	assert.Equal(t, "https://photos.example/a", updated.FriendsRsvp[0].PhotoLink)
}

func TestApplyKeepsIdentifiersUnique(t *testing.T) {
	event := baseEvent()
	responders := []models.Responder{
		guestResponder("Sam", "abc"),
		guestResponder("Samantha", "abc"),
		guestResponder("Riley", "xyz"),
		guestResponder("Riley B", "xyz"),
	}

	for _, responder := range responders {
		event = Apply(event, responder, models.RsvpStatusGoing, nil, nil, now)
	}

	seen := map[string]bool{}
	for _, entry := range event.FriendsRsvp {
		if entry.UserIdentifier == "" {
			continue
		}
		assert.False(t, seen[entry.UserIdentifier], "duplicate identifier %s", entry.UserIdentifier)
		seen[entry.UserIdentifier] = true
	}
	assert.Len(t, event.FriendsRsvp, 2)
}

func TestAttendeesByStatus(t *testing.T) {
	event := baseEvent()
	event.FriendsRsvp = []models.RsvpEntry{
		{Name: "Riley", Status: models.RsvpStatusGoing},
		{Name: "Quinn", Status: models.RsvpStatusMaybe},
		{Name: "Sam", Status: models.RsvpStatusNotGoing},
		{Name: "Casey", Status: models.RsvpStatusNoResponse},
		{Name: "Jordan", Status: models.RsvpStatusGoing},
	}

	roster := AttendeesByStatus(event)

	require.Len(t, roster.Going, 2)
	assert.Equal(t, "Riley", roster.Going[0].Name)
	assert.Equal(t, "Jordan", roster.Going[1].Name)
	require.Len(t, roster.Maybe, 1)
	assert.Equal(t, "Quinn", roster.Maybe[0].Name)
}
