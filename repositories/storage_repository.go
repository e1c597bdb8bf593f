package repositories

import (
	"context"
	"errors"

	"hangs.link/configs/configsdatabase"
	"hangs.link/configs/configslog"
	"hangs.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound aranan kayıt depoda yok.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IStorageRepository key-value deposu için arayüz. Tarayıcı localStorage'ının
// sunucu karşılığı: anahtar başına tek serileştirilmiş değer.
type IStorageRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Has(ctx context.Context, key string) (bool, error)
}

// StorageRepository IStorageRepository arayüzünü uygular.
type StorageRepository struct {
	db *gorm.DB
}

// NewStorageRepository yeni bir StorageRepository örneği oluşturur.
func NewStorageRepository() IStorageRepository {
	return &StorageRepository{db: configsdatabase.GetDB()}
}

// NewStorageRepositoryWithDB test ortamında farklı bağlantı vermek için.
func NewStorageRepositoryWithDB(db *gorm.DB) IStorageRepository {
	return &StorageRepository{db: db}
}

func (r *StorageRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Get anahtarın değerini döndürür. Kayıt yoksa ErrNotFound.
func (r *StorageRepository) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.New("geçersiz depo anahtarı")
	}
	var entry models.StorageEntry
	err := r.getDB(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		configslog.Log.Error("StorageRepository.Get: DB error", zap.String("key", key), zap.Error(err))
		return "", err
	}
	return entry.Value, nil
}

// Set anahtarın değerini yazar; kayıt varsa değeri değiştirilir.
// Satır bazında son yazan kazanır, versiyon kontrolü yoktur.
func (r *StorageRepository) Set(ctx context.Context, key string, value string) error {
	if key == "" {
		return errors.New("geçersiz depo anahtarı")
	}
	entry := models.StorageEntry{Key: key, Value: value}
	err := r.getDB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
	if err != nil {
		configslog.Log.Error("StorageRepository.Set: DB error", zap.String("key", key), zap.Error(err))
	}
	return err
}

// Has anahtarın depoda olup olmadığını söyler.
func (r *StorageRepository) Has(ctx context.Context, key string) (bool, error) {
	_, err := r.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

var _ IStorageRepository = (*StorageRepository)(nil)
