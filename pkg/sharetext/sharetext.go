package sharetext

import (
	"fmt"
	"strings"

	"hangs.link/models"
	"hangs.link/pkg/timeline"
)

// Permalink etkinliğin paylaşılabilir linkini kurar.
func Permalink(baseURL string, eventID string) string {
	return strings.TrimRight(baseURL, "/") + "/e/" + eventID
}

// FormatEventText panoya kopyalama / SMS / paylaşım sayfası için biçimlenmiş
// davet metnini üretir:
//
//	🍕 Pizza Night at Roberta's
//	📅 Sat, Apr 19, 7:00 PM
//	📍 Roberta's Pizza, 261 Moore St
//
//	RSVP here: <permalink>
func FormatEventText(event models.Event, permalink string) string {
	return fmt.Sprintf("%s %s\n📅 %s\n📍 %s\n\nRSVP here: %s",
		event.Emoji, event.Title, FormatEventDate(event.Date), event.Location, permalink)
}

// FormatEventDate tarihi kısa okunur forma çevirir ("Sat, Apr 19, 7:00 PM").
// Çözülemeyen tarih olduğu gibi gösterilir.
func FormatEventDate(value string) string {
	t := timeline.ParseEventDate(value)
	if t.IsZero() {
		return value
	}
	return t.Format("Mon, Jan 2, 3:04 PM")
}
