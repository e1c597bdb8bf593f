package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"hangs.link/configs/configslog"
	"hangs.link/models"

	"go.uber.org/zap"
)

// IEventRepository etkinlik koleksiyonu için arayüz. Koleksiyonun tamamı tek
// JSON dokümanı olarak okunup yazılır: her mutasyon tüm listeyi okur, tek bir
// event'i değiştirip tüm listeyi geri yazar. Kısmi güncelleme ve versiyon
// kontrolü yoktur; eşzamanlı iki yazımda son yazanın anlık görüntüsü kazanır.
type IEventRepository interface {
	LoadAll(ctx context.Context) ([]models.Event, error)
	SaveAll(ctx context.Context, events []models.Event) error
	FindByID(ctx context.Context, id string) (*models.Event, error)
}

// EventRepository IEventRepository arayüzünü uygular.
type EventRepository struct {
	storage IStorageRepository
}

// NewEventRepository yeni bir EventRepository örneği oluşturur.
func NewEventRepository() IEventRepository {
	return &EventRepository{storage: NewStorageRepository()}
}

// NewEventRepositoryWithStorage test ortamında depo vermek için.
func NewEventRepositoryWithStorage(storage IStorageRepository) IEventRepository {
	return &EventRepository{storage: storage}
}

// LoadAll koleksiyonun tamamını döndürür. Eksik veya bozuk doküman boş
// koleksiyon sayılır; hata üretmez.
func (r *EventRepository) LoadAll(ctx context.Context) ([]models.Event, error) {
	raw, err := r.storage.Get(ctx, models.StorageKeyDrops)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Event{}, nil
		}
		return nil, err
	}

	var events []models.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		configslog.Log.Warn("Etkinlik koleksiyonu çözülemedi, boş koleksiyonla devam ediliyor",
			zap.Error(err))
		return []models.Event{}, nil
	}
	return events, nil
}

// SaveAll koleksiyonun tamamını serileştirip yazar.
func (r *EventRepository) SaveAll(ctx context.Context, events []models.Event) error {
	if events == nil {
		events = []models.Event{}
	}
	raw, err := json.Marshal(events)
	if err != nil {
		configslog.Log.Error("Etkinlik koleksiyonu serileştirilemedi", zap.Error(err))
		return err
	}
	return r.storage.Set(ctx, models.StorageKeyDrops, string(raw))
}

// FindByID koleksiyonda id'si eşleşen event'i döndürür, yoksa ErrNotFound.
func (r *EventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	events, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == id {
			event := events[i].Clone()
			return &event, nil
		}
	}
	return nil, ErrNotFound
}

var _ IEventRepository = (*EventRepository)(nil)
