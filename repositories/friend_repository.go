package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"hangs.link/configs/configslog"
	"hangs.link/models"

	"go.uber.org/zap"
)

// IFriendRepository arkadaş ve arkadaş grubu koleksiyonları için arayüz.
// Etkinlik koleksiyonuyla aynı desen: anahtar başına tek JSON dokümanı,
// tüm-koleksiyon oku-değiştir-yaz.
type IFriendRepository interface {
	LoadFriends(ctx context.Context) ([]models.Friend, error)
	SaveFriends(ctx context.Context, friends []models.Friend) error
	LoadGroups(ctx context.Context) ([]models.FriendGroup, error)
	SaveGroups(ctx context.Context, groups []models.FriendGroup) error
}

// FriendRepository IFriendRepository arayüzünü uygular.
type FriendRepository struct {
	storage IStorageRepository
}

// NewFriendRepository yeni bir FriendRepository örneği oluşturur.
func NewFriendRepository() IFriendRepository {
	return &FriendRepository{storage: NewStorageRepository()}
}

// NewFriendRepositoryWithStorage test ortamında depo vermek için.
func NewFriendRepositoryWithStorage(storage IStorageRepository) IFriendRepository {
	return &FriendRepository{storage: storage}
}

func (r *FriendRepository) LoadFriends(ctx context.Context) ([]models.Friend, error) {
	var friends []models.Friend
	if err := r.loadCollection(ctx, models.StorageKeyFriends, &friends); err != nil {
		return nil, err
	}
	if friends == nil {
		friends = []models.Friend{}
	}
	return friends, nil
}

func (r *FriendRepository) SaveFriends(ctx context.Context, friends []models.Friend) error {
	return r.saveCollection(ctx, models.StorageKeyFriends, friends)
}

func (r *FriendRepository) LoadGroups(ctx context.Context) ([]models.FriendGroup, error) {
	var groups []models.FriendGroup
	if err := r.loadCollection(ctx, models.StorageKeyFriendGroups, &groups); err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []models.FriendGroup{}
	}
	return groups, nil
}

func (r *FriendRepository) SaveGroups(ctx context.Context, groups []models.FriendGroup) error {
	return r.saveCollection(ctx, models.StorageKeyFriendGroups, groups)
}

// loadCollection anahtardaki JSON dokümanını hedefe çözer. Eksik veya bozuk
// doküman boş koleksiyon sayılır.
func (r *FriendRepository) loadCollection(ctx context.Context, key string, target any) error {
	raw, err := r.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		configslog.Log.Warn("Koleksiyon çözülemedi, boş koleksiyonla devam ediliyor",
			zap.String("key", key), zap.Error(err))
	}
	return nil
}

func (r *FriendRepository) saveCollection(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		configslog.Log.Error("Koleksiyon serileştirilemedi", zap.String("key", key), zap.Error(err))
		return err
	}
	return r.storage.Set(ctx, key, string(raw))
}

var _ IFriendRepository = (*FriendRepository)(nil)
