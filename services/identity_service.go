package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hangs.link/configs/configslog"
	"hangs.link/models"
	"hangs.link/pkg/identity"
	"hangs.link/repositories"

	"go.uber.org/zap"
)

// IdentityServiceError kimlik servisi hataları.
type IdentityServiceError string

func (e IdentityServiceError) Error() string { return string(e) }

const (
	ErrDisplayNameRequired IdentityServiceError = "display name is required"
)

// rsvpHistoryEntry cihaz başına tutulan RSVP geçmişi kaydı. Yazılır ama geri
// okunmaz; ileride kullanım için bırakılmış bir kancadır.
type rsvpHistoryEntry struct {
	Status    models.RsvpStatus `json:"status"`
	Note      string            `json:"note"`
	Timestamp string            `json:"timestamp"`
}

// IIdentityService cihaz kimliği ve görünen isim işlemleri için arayüz.
// Kimlik doğrulama yoktur: isim kullanıcının beyanıdır, pseudo-identifier
// cihaz çerezinden gelir. İki cihaz aynı ismi kullanabilir; bu kabul edilen
// bir durumdur, identifier eşitlik bozucu olarak devreye girer.
type IIdentityService interface {
	GetDisplayName(ctx context.Context, deviceID string) (string, error)
	SetDisplayName(ctx context.Context, deviceID string, name string) (string, error)
	RecordRsvpHistory(ctx context.Context, deviceID string, eventID string, status models.RsvpStatus, note string) error
}

// IdentityService IIdentityService arayüzünü uygular.
type IdentityService struct {
	storage repositories.IStorageRepository
}

// NewIdentityService yeni bir IdentityService örneği oluşturur.
func NewIdentityService() IIdentityService {
	return &IdentityService{storage: repositories.NewStorageRepository()}
}

// NewIdentityServiceWithStorage test ortamında depo vermek için.
func NewIdentityServiceWithStorage(storage repositories.IStorageRepository) IIdentityService {
	return &IdentityService{storage: storage}
}

// GetDisplayName cihazın kayıtlı görünen ismini döndürür; yoksa boş string.
func (s *IdentityService) GetDisplayName(ctx context.Context, deviceID string) (string, error) {
	if deviceID == "" {
		return "", nil
	}
	name, err := s.storage.Get(ctx, models.StorageKeyUserNamePrefix+deviceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return name, nil
}

// SetDisplayName ismi kırpıp kaydeder ve normalize halini döndürür.
func (s *IdentityService) SetDisplayName(ctx context.Context, deviceID string, name string) (string, error) {
	normalized, ok := identity.NormalizeDisplayName(name)
	if !ok {
		return "", ErrDisplayNameRequired
	}
	if err := s.storage.Set(ctx, models.StorageKeyUserNamePrefix+deviceID, normalized); err != nil {
		return "", err
	}
	return normalized, nil
}

// RecordRsvpHistory cihazın event başına son RSVP'sini geçmiş dokümanına
// yazar. Geçmiş yazma hatası RSVP akışını durdurmaz, sadece loglanır.
func (s *IdentityService) RecordRsvpHistory(ctx context.Context, deviceID string, eventID string, status models.RsvpStatus, note string) error {
	if deviceID == "" || eventID == "" {
		return nil
	}
	key := models.StorageKeyRsvpHistoryPrefix + deviceID

	history := map[string]rsvpHistoryEntry{}
	raw, err := s.storage.Get(ctx, key)
	if err == nil {
		if jsonErr := json.Unmarshal([]byte(raw), &history); jsonErr != nil {
			history = map[string]rsvpHistoryEntry{}
		}
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	history[eventID] = rsvpHistoryEntry{
		Status:    status,
		Note:      note,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	encoded, err := json.Marshal(history)
	if err != nil {
		configslog.Log.Error("RSVP geçmişi serileştirilemedi", zap.String("deviceID", deviceID), zap.Error(err))
		return err
	}
	return s.storage.Set(ctx, key, string(encoded))
}

var _ IIdentityService = (*IdentityService)(nil)
