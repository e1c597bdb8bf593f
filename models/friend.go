package models

// Friend etkinliklerden bağımsız yönetilen arkadaş kaydı.
// Etkinlikler arkadaşa id ile değil görünen isimle referans verir; isim
// değişikliği geçmiş etkinliklere yansımaz.
type Friend struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	LastHangout string `json:"lastHangout,omitempty"` // lokal ISO-8601
	Avatar      string `json:"avatar"`                // ismin ilk harfi
	Color       string `json:"color"`                 // hex renk
}

// FriendGroup kayıtlı bir arkadaş alt kümesi. Sadece etkinlik oluştururken
// davet listesini doldurmak için kullanılır; sonrasında canlı bir ilişki
// tutulmaz (üyelik değişse de mevcut etkinlikler etkilenmez).
type FriendGroup struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Emoji   string   `json:"emoji"`
	Color   string   `json:"color"`
	Members []string `json:"members"` // Friend.ID listesi
}
