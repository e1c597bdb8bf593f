package models

// StorageEntry tarayıcı localStorage'ının birebir karşılığı: anahtar başına
// tek bir serileştirilmiş değer. Etkinlik koleksiyonunun tamamı "drops"
// anahtarında tek JSON dokümanı olarak durur.
type StorageEntry struct {
	Key   string `gorm:"primaryKey;type:varchar(100)"`
	Value string `gorm:"type:text"`
}

// Depo anahtarları.
const (
	StorageKeyDrops        = "drops"
	StorageKeyFriends      = "friends"
	StorageKeyFriendGroups = "friendGroups"

	// Cihaz bazlı anahtarlar "<prefix><deviceID>" şeklinde kurulur.
	StorageKeyUserNamePrefix    = "userName:"
	StorageKeyRsvpHistoryPrefix = "rsvpHistory:"
)
