package services

import (
	"context"
	"errors"
	"time"

	"hangs.link/configs/configslog"
	"hangs.link/models"
	"hangs.link/pkg/identity"
	"hangs.link/pkg/rsvp"
	"hangs.link/repositories"

	"go.uber.org/zap"
)

// GuestServiceError misafir akışı hataları.
type GuestServiceError string

func (e GuestServiceError) Error() string { return string(e) }

const (
	// ErrGuestNameRequired isim verilmeden RSVP yazılamaz. Handler isim
	// formunu gösterir; form isim ve seçilen durumu birlikte gönderdiği için
	// bekleyen seçim isim alınır alınmaz uygulanmış olur.
	ErrGuestNameRequired GuestServiceError = "a name is required before responding"
)

// GuestEventView paylaşılan link sayfasının ihtiyaç duyduğu her şey:
// etkinlik, ziyaretçinin kayıtlı ismi ve (varsa) mevcut yanıtı.
type GuestEventView struct {
	Event       models.Event
	DisplayName string
	YourStatus  models.RsvpStatus
	YourNote    string
}

// IGuestService public paylaşım linki akışı için arayüz. Ziyaretçi önce
// identifier'a, sonra isme göre mevcut bir friendsRsvp kaydına çözülür;
// hiçbiri tutmazsa yeni kayıt açılır.
type IGuestService interface {
	GetEventForGuest(ctx context.Context, eventID string, deviceID string) (*GuestEventView, error)
	SubmitGuestRsvp(ctx context.Context, eventID string, deviceID string, name string, status models.RsvpStatus, note, photoLink *string) (*models.Event, error)
}

// GuestService IGuestService arayüzünü uygular.
type GuestService struct {
	repo     repositories.IEventRepository
	identity IIdentityService
}

// NewGuestService yeni bir GuestService örneği oluşturur.
func NewGuestService() IGuestService {
	return &GuestService{
		repo:     repositories.NewEventRepository(),
		identity: NewIdentityService(),
	}
}

// NewGuestServiceWithDeps test ortamında bağımlılık vermek için.
func NewGuestServiceWithDeps(repo repositories.IEventRepository, identity IIdentityService) IGuestService {
	return &GuestService{repo: repo, identity: identity}
}

// GetEventForGuest paylaşılan linkteki etkinliği ve ziyaretçinin mevcut
// durumunu döndürür. Eşleşmeyen id ErrEventNotFound üretir; handler bunu
// "not found" sayfasına çevirir, çökme yoktur.
func (s *GuestService) GetEventForGuest(ctx context.Context, eventID string, deviceID string) (*GuestEventView, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	view := &GuestEventView{Event: *event, YourStatus: models.RsvpStatusNoResponse}

	displayName, err := s.identity.GetDisplayName(ctx, deviceID)
	if err != nil {
		configslog.Log.Warn("Misafir ismi okunamadı", zap.String("deviceID", deviceID), zap.Error(err))
	}
	view.DisplayName = displayName

	responder := models.Responder{DisplayName: displayName, PseudoID: deviceID}
	if idx := rsvp.ResolveEntry(event.FriendsRsvp, responder); idx >= 0 {
		view.YourStatus = event.FriendsRsvp[idx].Status
		view.YourNote = event.FriendsRsvp[idx].Note
	}
	return view, nil
}

// SubmitGuestRsvp misafirin yanıtını işler. İsim zorunludur; verilen isim
// cihaza kaydedilir ki sonraki ziyaretlerde sorulmasın. Identifier eşleşmesi
// isimden önce geldiği için ismini değiştiren dönen misafir ikinci bir kayıt
// açmaz, mevcut kaydı yeni isimle güncellenir.
func (s *GuestService) SubmitGuestRsvp(ctx context.Context, eventID string, deviceID string, name string, status models.RsvpStatus, note, photoLink *string) (*models.Event, error) {
	normalized, ok := identity.NormalizeDisplayName(name)
	if !ok {
		return nil, ErrGuestNameRequired
	}
	if !status.Valid() {
		return nil, ErrInvalidRsvpStatus
	}

	if _, err := s.identity.SetDisplayName(ctx, deviceID, normalized); err != nil {
		configslog.Log.Warn("Misafir ismi kaydedilemedi", zap.String("deviceID", deviceID), zap.Error(err))
	}

	events, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range events {
		if events[i].ID == eventID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrEventNotFound
	}

	responder := models.Responder{DisplayName: normalized, PseudoID: deviceID}
	updated := rsvp.Apply(events[idx], responder, status, note, photoLink, time.Now())
	events[idx] = updated

	if err := s.repo.SaveAll(ctx, events); err != nil {
		return nil, err
	}

	noteValue := ""
	if note != nil {
		noteValue = *note
	}
	if err := s.identity.RecordRsvpHistory(ctx, deviceID, eventID, status, noteValue); err != nil {
		configslog.Log.Warn("RSVP geçmişi yazılamadı", zap.String("eventID", eventID), zap.Error(err))
	}

	return &updated, nil
}

var _ IGuestService = (*GuestService)(nil)
