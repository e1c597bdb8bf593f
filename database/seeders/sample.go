package seeders

import (
	"context"
	"encoding/json"

	"hangs.link/configs/configslog"
	"hangs.link/models"
	"hangs.link/repositories"

	"gorm.io/gorm"
)

// SeedSampleData depo boşsa örnek etkinlik/arkadaş/grup koleksiyonlarını
// yükler. Her koleksiyon kendi anahtarı için kontrol edilir: anahtar varsa
// dokunulmaz. Her açılışta üzerine yazmak kullanıcı verisini silerdi; seed
// sadece ilk çalıştırma varsayılanıdır.
func SeedSampleData(db *gorm.DB) error {
	ctx := context.Background()
	storage := repositories.NewStorageRepositoryWithDB(db)

	seeded := 0
	collections := []struct {
		key   string
		value any
	}{
		{models.StorageKeyDrops, sampleDrops()},
		{models.StorageKeyFriends, sampleFriends()},
		{models.StorageKeyFriendGroups, sampleFriendGroups()},
	}

	for _, collection := range collections {
		exists, err := storage.Has(ctx, collection.key)
		if err != nil {
			return err
		}
		if exists {
			configslog.SLog.Debugf("'%s' koleksiyonu zaten mevcut, seed atlanıyor.", collection.key)
			continue
		}

		raw, err := json.Marshal(collection.value)
		if err != nil {
			return err
		}
		if err := storage.Set(ctx, collection.key, string(raw)); err != nil {
			return err
		}
		seeded++
		configslog.SLog.Infof("'%s' koleksiyonu örnek veriyle oluşturuldu.", collection.key)
	}

	if seeded == 0 {
		configslog.SLog.Info("Tüm koleksiyonlar mevcut, örnek veri yüklenmedi.")
	}
	return nil
}

func sampleDrops() []models.Event {
	return []models.Event{
		{
			ID:           "0",
			Emoji:        "🎮",
			Title:        "Game Night at Riley's",
			Date:         "2025-04-01T19:00",
			Location:     "Riley's Apartment, 42 Oak St",
			Vibe:         models.VibeSilly,
			IsHost:       false,
			Friends:      []string{"Riley", "Quinn", "Sam", "Casey"},
			FriendsCount: 4,
			YourRsvp:     models.RsvpStatusGoing,
			RsvpNote:     "Brought snacks!",
			PhotoLink:    "https://photos.app.goo.gl/examplelink123",
			FriendsRsvp: []models.RsvpEntry{
				{Name: "Riley", Status: models.RsvpStatusGoing, Note: "Can't wait to destroy everyone at Mario Kart!", PhotoLink: "https://photos.google.com/share/AF1QipMxample"},
				{Name: "Quinn", Status: models.RsvpStatusGoing, Note: "Bringing extra controllers", PhotoLink: "https://share.icloud.com/photos/example2"},
				{Name: "Sam", Status: models.RsvpStatusGoing},
				{Name: "Casey", Status: models.RsvpStatusMaybe, Note: "Might be late"},
			},
		},
		{
			ID:           "1",
			Emoji:        "🍕",
			Title:        "Pizza Night at Roberta's",
			Date:         "2025-04-19T19:00",
			Location:     "Roberta's Pizza, 261 Moore St",
			Vibe:         models.VibeChill,
			IsHost:       true,
			Friends:      []string{"Alex", "Jamie", "Taylor", "Morgan", "Jordan"},
			FriendsCount: 5,
			YourRsvp:     models.RsvpStatusGoing,
			FriendsRsvp: []models.RsvpEntry{
				{Name: "Alex", Status: models.RsvpStatusGoing},
				{Name: "Jamie", Status: models.RsvpStatusGoing},
				{Name: "Taylor", Status: models.RsvpStatusGoing},
				{Name: "Morgan", Status: models.RsvpStatusGoing},
				{Name: "Jordan", Status: models.RsvpStatusGoing},
			},
		},
		{
			ID:           "2",
			Emoji:        "🏃",
			Title:        "Morning Run + Coffee",
			Date:         "2025-05-24T08:00",
			Location:     "Prospect Park Loop",
			Vibe:         models.VibeSweaty,
			IsHost:       true,
			Friends:      []string{"Riley", "Quinn"},
			FriendsCount: 2,
			YourRsvp:     models.RsvpStatusNoResponse,
			FriendsRsvp: []models.RsvpEntry{
				{Name: "Riley", Status: models.RsvpStatusMaybe, Note: "Depends how Friday goes"},
			},
		},
	}
}

func sampleFriends() []models.Friend {
	return []models.Friend{
		{ID: "1", Name: "Riley", Phone: "555-123-4567", LastHangout: "2025-04-01T19:00", Avatar: "R", Color: "#4ade80"},
		{ID: "2", Name: "Quinn", Phone: "555-234-5678", LastHangout: "2025-03-15T13:00", Avatar: "Q", Color: "#f472b6"},
		{ID: "3", Name: "Sam", Phone: "555-345-6789", LastHangout: "2025-04-01T19:00", Avatar: "S", Color: "#3b82f6"},
		{ID: "4", Name: "Casey", Phone: "555-456-7890", LastHangout: "2025-03-10T18:30", Avatar: "C", Color: "#f97316"},
		{ID: "5", Name: "Jordan", Phone: "555-567-8901", LastHangout: "2025-02-28T20:00", Avatar: "J", Color: "#8b5cf6"},
		{ID: "6", Name: "Taylor", Phone: "555-678-9012", LastHangout: "2025-03-25T12:15", Avatar: "T", Color: "#06b6d4"},
	}
}

func sampleFriendGroups() []models.FriendGroup {
	return []models.FriendGroup{
		{ID: "1", Name: "College Friends", Emoji: "🎓", Color: "#3b82f6", Members: []string{"1", "3", "5"}},
		{ID: "2", Name: "Workout Crew", Emoji: "💪", Color: "#22c55e", Members: []string{"2", "4", "6"}},
		{ID: "3", Name: "Dinner Club", Emoji: "🍽️", Color: "#f97316", Members: []string{"1", "2", "5"}},
		{ID: "4", Name: "Game Night", Emoji: "🎮", Color: "#8b5cf6", Members: []string{"3", "4", "6", "1"}},
	}
}
