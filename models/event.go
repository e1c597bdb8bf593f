package models

// RsvpStatus bir davetlinin yanıt durumu.
type RsvpStatus string

const (
	RsvpStatusGoing      RsvpStatus = "going"
	RsvpStatusMaybe      RsvpStatus = "maybe"
	RsvpStatusNotGoing   RsvpStatus = "not_going"
	RsvpStatusNoResponse RsvpStatus = "no_response"
)

// Valid durum değerinin tanımlı enum'lardan biri olup olmadığını söyler.
func (s RsvpStatus) Valid() bool {
	switch s {
	case RsvpStatusGoing, RsvpStatusMaybe, RsvpStatusNotGoing, RsvpStatusNoResponse:
		return true
	}
	return false
}

// Vibe etkinliğin mood etiketi. Sadece gösterim amaçlı.
type Vibe string

const (
	VibeChill       Vibe = "chill"
	VibeSilly       Vibe = "silly"
	VibeSweaty      Vibe = "sweaty"
	VibeTalky       Vibe = "talky"
	VibeSpontaneous Vibe = "spontaneous"
)

// Valid vibe değerinin tanımlı enum'lardan biri olup olmadığını söyler.
func (v Vibe) Valid() bool {
	switch v {
	case VibeChill, VibeSilly, VibeSweaty, VibeTalky, VibeSpontaneous:
		return true
	}
	return false
}

// RsvpEntry friendsRsvp listesindeki tek bir yanıt.
// Name (veya doluysa UserIdentifier) event içinde benzersizdir; bir kişinin
// en fazla bir kaydı olur.
type RsvpEntry struct {
	Name           string     `json:"name"`
	Status         RsvpStatus `json:"status"`
	Note           string     `json:"note,omitempty"`
	PhotoLink      string     `json:"photoLink,omitempty"`
	UserIdentifier string     `json:"userIdentifier,omitempty"`
	LastUpdated    string     `json:"lastUpdated,omitempty"` // ISO-8601
}

// Event bir "hang"/"drop" kaydı. Koleksiyonun tamamı tek bir JSON dokümanı
// olarak saklanır; alan adları o dokümandaki adlarla birebir aynıdır.
type Event struct {
	ID       string `json:"id"`
	Emoji    string `json:"emoji"`
	Title    string `json:"title"`
	Date     string `json:"date"` // lokal ISO-8601, örn. 2025-04-19T19:00
	Location string `json:"location"`
	Vibe     Vibe   `json:"vibe"`
	IsHost   bool   `json:"isHost"`

	// Davet edilen isimler. Bilinçli olarak denormalize: arkadaş kaydına id ile
	// değil, görünen isimle referans verilir.
	Friends []string `json:"friends"`

	// FriendsCount davet formunun yazdığı bilgilendirme amaçlı sayıdır.
	// RSVP'ler değiştikçe yeniden hesaplanmaz.
	FriendsCount int `json:"friendsCount"`

	// Lokal kullanıcının kendi yanıtı. FriendsRsvp içindeki kendi kaydıyla
	// hiçbir yazma yolunda ayrışmamalıdır.
	YourRsvp  RsvpStatus `json:"yourRsvp"`
	RsvpNote  string     `json:"rsvpNote"`
	PhotoLink string     `json:"photoLink,omitempty"`

	FriendsRsvp []RsvpEntry `json:"friendsRsvp"`
}

// Clone event'in derin kopyasını döndürür. Merge motoru saf çalışır;
// çağıranın elindeki kopya asla yerinde değiştirilmez.
func (e Event) Clone() Event {
	out := e
	out.Friends = append([]string(nil), e.Friends...)
	out.FriendsRsvp = append([]RsvpEntry(nil), e.FriendsRsvp...)
	return out
}

// Responder bir RSVP'yi kimin gönderdiğini tanımlar.
type Responder struct {
	DisplayName  string
	PseudoID     string // cihaz bazlı pseudo-identifier, misafir akışında dolu
	IsLocalOwner bool   // uygulama içi (panel) akışından mı geliyor
}
