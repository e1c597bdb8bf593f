package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"hangs.link/configs/configslog"
	"hangs.link/models"
	"hangs.link/pkg/rsvp"
	"hangs.link/pkg/timeline"
	"hangs.link/repositories"

	"go.uber.org/zap"
)

// EventServiceError etkinlik servisi hataları.
type EventServiceError string

func (e EventServiceError) Error() string { return string(e) }

const (
	ErrEventNotFound      EventServiceError = "event not found"
	ErrEventTitleRequired EventServiceError = "event title is required"
	ErrEventDateRequired  EventServiceError = "event date is required"
	ErrEventNotHosted     EventServiceError = "only the host can edit this event"
	ErrInvalidRsvpStatus  EventServiceError = "invalid rsvp status"
	ErrInvalidVibe        EventServiceError = "invalid vibe"
)

// ownerFallbackName kayıtlı ismi olmayan lokal kullanıcının görünen adı.
const ownerFallbackName = "You"

// EventInput oluşturma/düzenleme formundan gelen etkinlik verisi.
type EventInput struct {
	ID       string // düzenlemede dolu, yeni kayıtta boş
	Emoji    string
	Title    string
	Date     string // lokal ISO-8601 (2006-01-02T15:04)
	Location string
	Vibe     models.Vibe
	Friends  []string // davet edilen görünen isimler
	GroupIDs []string // seçilen arkadaş grupları; üyeleri Friends'e eklenir
}

// IEventService uygulama içi (owner) etkinlik akışı için arayüz.
// RSVP mutasyonlarının tek giriş noktası SubmitOwnerRsvp'dir.
type IEventService interface {
	CreateEvent(ctx context.Context, input EventInput) (*models.Event, error)
	UpdateEvent(ctx context.Context, input EventInput) (*models.Event, error)
	GetEventByID(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context, now time.Time) (upcoming, past []models.Event, err error)
	SubmitOwnerRsvp(ctx context.Context, eventID string, deviceID string, status models.RsvpStatus, note, photoLink *string) (*models.Event, error)
}

// EventService IEventService arayüzünü uygular.
type EventService struct {
	repo          repositories.IEventRepository
	friendService IFriendService
	identity      IIdentityService
}

// NewEventService yeni bir EventService örneği oluşturur.
func NewEventService() IEventService {
	return &EventService{
		repo:          repositories.NewEventRepository(),
		friendService: NewFriendService(),
		identity:      NewIdentityService(),
	}
}

// NewEventServiceWithDeps test ortamında bağımlılık vermek için.
func NewEventServiceWithDeps(repo repositories.IEventRepository, friends IFriendService, identity IIdentityService) IEventService {
	return &EventService{repo: repo, friendService: friends, identity: identity}
}

// validateEventInput temel validasyonları yapar ve vibe'ı normalize eder.
func validateEventInput(input *EventInput) error {
	if input.Title == "" {
		return ErrEventTitleRequired
	}
	if input.Date == "" {
		return ErrEventDateRequired
	}
	if input.Vibe == "" {
		input.Vibe = models.VibeChill
	}
	if !input.Vibe.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidVibe, input.Vibe)
	}
	return nil
}

// CreateEvent yeni bir etkinlik oluşturup kalıcılaştırır.
// ID zaman damgasından türetilir; seçilen grupların üyeleri davet listesine
// isim olarak açılır ve friendsCount form anındaki liste uzunluğuna eşitlenir.
func (s *EventService) CreateEvent(ctx context.Context, input EventInput) (*models.Event, error) {
	if err := validateEventInput(&input); err != nil {
		return nil, err
	}

	friends, err := s.expandInvitees(ctx, input)
	if err != nil {
		return nil, err
	}

	event := models.Event{
		ID:           input.ID,
		Emoji:        input.Emoji,
		Title:        input.Title,
		Date:         input.Date,
		Location:     input.Location,
		Vibe:         input.Vibe,
		IsHost:       true,
		Friends:      friends,
		FriendsCount: len(friends),
		YourRsvp:     models.RsvpStatusNoResponse,
		FriendsRsvp:  []models.RsvpEntry{},
	}
	if event.ID == "" {
		event.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	events, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	events = append(events, event)
	if err := s.repo.SaveAll(ctx, events); err != nil {
		return nil, err
	}

	configslog.SLog.Infof("Etkinlik oluşturuldu: %s (%s)", event.Title, event.ID)
	return &event, nil
}

// UpdateEvent host'un tanımlayıcı alanlarını (emoji, başlık, tarih, konum,
// vibe, davet listesi) günceller. RSVP alanlarına dokunmaz.
func (s *EventService) UpdateEvent(ctx context.Context, input EventInput) (*models.Event, error) {
	if err := validateEventInput(&input); err != nil {
		return nil, err
	}

	events, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range events {
		if events[i].ID == input.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrEventNotFound
	}
	if !events[idx].IsHost {
		return nil, ErrEventNotHosted
	}

	friends, err := s.expandInvitees(ctx, input)
	if err != nil {
		return nil, err
	}

	updated := events[idx].Clone()
	updated.Emoji = input.Emoji
	updated.Title = input.Title
	updated.Date = input.Date
	updated.Location = input.Location
	updated.Vibe = input.Vibe
	updated.Friends = friends
	updated.FriendsCount = len(friends)
	events[idx] = updated

	if err := s.repo.SaveAll(ctx, events); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetEventByID tek bir etkinliği döndürür.
func (s *EventService) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// ListEvents koleksiyonu yaklaşan/geçmiş olarak bölerek döndürür.
func (s *EventService) ListEvents(ctx context.Context, now time.Time) (upcoming, past []models.Event, err error) {
	events, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	upcoming, past = timeline.Partition(events, now)
	return upcoming, past, nil
}

// SubmitOwnerRsvp lokal kullanıcının yanıtını işler: merge motoru hem
// yourRsvp alanlarını hem friendsRsvp'deki kendi kaydını birlikte günceller,
// iki görünüm hiçbir zaman ayrışmaz. Dönen event, deponun o an tuttuğu
// kayıttır; açık detay görünümü yeniden yükleme beklemeden bunu gösterebilir.
func (s *EventService) SubmitOwnerRsvp(ctx context.Context, eventID string, deviceID string, status models.RsvpStatus, note, photoLink *string) (*models.Event, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRsvpStatus, status)
	}

	displayName, err := s.identity.GetDisplayName(ctx, deviceID)
	if err != nil {
		configslog.Log.Warn("Görünen isim okunamadı, varsayılan kullanılacak", zap.Error(err))
	}
	if displayName == "" {
		displayName = ownerFallbackName
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

	responder := models.Responder{DisplayName: displayName, IsLocalOwner: true}
	updated := rsvp.Apply(events[idx], responder, status, note, photoLink, time.Now())
	events[idx] = updated

	if err := s.repo.SaveAll(ctx, events); err != nil {
		return nil, err
	}

	noteValue := updated.RsvpNote
	if err := s.identity.RecordRsvpHistory(ctx, deviceID, eventID, status, noteValue); err != nil {
		configslog.Log.Warn("RSVP geçmişi yazılamadı", zap.String("eventID", eventID), zap.Error(err))
	}

	return &updated, nil
}

// expandInvitees form listesi + seçilen grup üyelerini tek isim listesinde
// toplar. Aynı isim iki kez eklenmez. Grup üyeliği yalnızca bu anda okunur.
func (s *EventService) expandInvitees(ctx context.Context, input EventInput) ([]string, error) {
	seen := map[string]bool{}
	friends := []string{}
	for _, name := range input.Friends {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		friends = append(friends, name)
	}

	if len(input.GroupIDs) > 0 {
		memberNames, err := s.friendService.ExpandGroupMembers(ctx, input.GroupIDs)
		if err != nil {
			return nil, err
		}
		for _, name := range memberNames {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			friends = append(friends, name)
		}
	}
	return friends, nil
}

var _ IEventService = (*EventService)(nil)
