package rsvp

import (
	"time"

	"hangs.link/models"
)

// ResolveEntry friendsRsvp içinde yanıtlayana ait kaydın index'ini döndürür,
// yoksa -1. Identifier eşleşmesi isim eşleşmesinden önce gelir: dönen bir
// misafir ziyaretler arasında görünen ismini değiştirmiş olabilir.
// İsim/identifier çözümleme kuralı yalnızca burada yaşar; çağrı yerlerinde
// yeniden yazılmaz.
func ResolveEntry(entries []models.RsvpEntry, responder models.Responder) int {
	if responder.PseudoID != "" {
		for i, entry := range entries {
			if entry.UserIdentifier != "" && entry.UserIdentifier == responder.PseudoID {
				return i
			}
		}
	}
	for i, entry := range entries {
		if entry.Name == responder.DisplayName {
			return i
		}
	}
	return -1
}

// Apply bir RSVP'yi event'e işler ve güncellenmiş yeni bir event döndürür.
// Saf fonksiyondur: verilen event değiştirilmez, kalıcılaştırma çağırana aittir.
//
// note ve photoLink nil ise "verilmedi" demektir ve mevcut değer korunur;
// boş string'e işaret eden pointer açıkça temizleme anlamına gelir.
func Apply(event models.Event, responder models.Responder, status models.RsvpStatus, note, photoLink *string, now time.Time) models.Event {
	out := event.Clone()
	stamp := now.UTC().Format(time.RFC3339)

	idx := ResolveEntry(out.FriendsRsvp, responder)
	if idx >= 0 {
		entry := &out.FriendsRsvp[idx]
		entry.Status = status
		if note != nil {
			entry.Note = *note
		}
		if photoLink != nil {
			entry.PhotoLink = *photoLink
		}
		if responder.PseudoID != "" {
			// Misafir akışı: isim değişmiş olabilir, kayıttaki ismi güncelle
			// ve identifier'ı sabitle.
			entry.Name = responder.DisplayName
			entry.UserIdentifier = responder.PseudoID
		}
		entry.LastUpdated = stamp
	} else if status != models.RsvpStatusNoResponse || (note != nil && *note != "") || photoLink != nil {
		// Dokunulmamış bir davetli kayıt üretmez: no_response + boş not +
		// photoLink yok ise ekleme yapılmaz.
		newEntry := models.RsvpEntry{
			Name:           responder.DisplayName,
			Status:         status,
			UserIdentifier: responder.PseudoID,
			LastUpdated:    stamp,
		}
		if note != nil {
			newEntry.Note = *note
		}
		if photoLink != nil {
			newEntry.PhotoLink = *photoLink
		}
		out.FriendsRsvp = append(out.FriendsRsvp, newEntry)
	}

	if responder.IsLocalOwner {
		// Kullanıcının kendi yanıtı iki yerde birden tutulur (yourRsvp alanları
		// ve friendsRsvp kaydı); her owner yazımı ikisini birlikte günceller.
		out.YourRsvp = status
		if note != nil {
			out.RsvpNote = *note
		}
		if photoLink != nil {
			out.PhotoLink = *photoLink
		}
	}

	return out
}

// Roster "kimler geliyor" görünümü için friendsRsvp'yi duruma göre ayırır.
// not_going ve no_response kayıtları listelenmez ama event üzerinde kalır.
type Roster struct {
	Going []models.RsvpEntry
	Maybe []models.RsvpEntry
}

// AttendeesByStatus event'in katılımcı roster'ını çıkarır.
func AttendeesByStatus(event models.Event) Roster {
	var roster Roster
	for _, entry := range event.FriendsRsvp {
		switch entry.Status {
		case models.RsvpStatusGoing:
			roster.Going = append(roster.Going, entry)
		case models.RsvpStatusMaybe:
			roster.Maybe = append(roster.Maybe, entry)
		}
	}
	return roster
}
