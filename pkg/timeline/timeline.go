package timeline

import (
	"sort"
	"time"

	"hangs.link/models"
)

// Etkinlik tarihleri formların yazdığı lokal ISO formatında saklanır.
const eventDateLayout = "2006-01-02T15:04"

// ParseEventDate event.date string'ini çözer. Saniyeli ve RFC3339 varyantları
// da tolere edilir; çözülemeyen tarih sıfır zaman döndürür.
func ParseEventDate(value string) time.Time {
	for _, layout := range []string{eventDateLayout, "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Partition etkinlikleri now'a göre yaklaşan/geçmiş olarak böler.
// date >= now yaklaşan sayılır. Bölmeden önce tek bir global artan sıralama
// yapılır; bölme göreli sırayı koruduğu için iki liste de tarih sıralı çıkar.
func Partition(events []models.Event, now time.Time) (upcoming, past []models.Event) {
	sorted := append([]models.Event(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ParseEventDate(sorted[i].Date).Before(ParseEventDate(sorted[j].Date))
	})

	for _, event := range sorted {
		if !ParseEventDate(event.Date).Before(now) {
			upcoming = append(upcoming, event)
		} else {
			past = append(past, event)
		}
	}
	return upcoming, past
}

// IsPast etkinlik tarihinin now'dan önce olup olmadığını söyler.
// Fotoğraf linkleri yalnızca geçmiş etkinliklerde anlamlıdır.
func IsPast(event models.Event, now time.Time) bool {
	return ParseEventDate(event.Date).Before(now)
}
