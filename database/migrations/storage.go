package migrations

import (
	"hangs.link/configs/configslog"
	"hangs.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateStorageTable key-value depo tablosunu oluşturur/günceller.
// Tüm kalıcı durum bu tek tabloda yaşar.
func MigrateStorageTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.StorageEntry{}); err != nil {
		configslog.Log.Error("storage_entries tablosu migrate edilemedi", zap.Error(err))
		return err
	}
	return nil
}
