package database

import (
	"hangs.link/configs/configslog"
	"hangs.link/database/migrations"
	"hangs.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize depoyu hazırlar: tabloyu migrate eder ve depo boşsa örnek
// veriyi yükler. Örnek veri YALNIZCA ilk çalıştırmada yazılır; mevcut
// kullanıcı verisinin üzerine asla yazılmaz.
func Initialize(db *gorm.DB, migrate bool, seed bool) error {
	if migrate {
		configslog.SLog.Info("Depo migrasyonu çalıştırılıyor...")
		if err := migrations.MigrateStorageTable(db); err != nil {
			configslog.Log.Error("Depo migrasyonu başarısız oldu", zap.Error(err))
			return err
		}
		configslog.SLog.Info("Depo migrasyonu tamamlandı.")
	}

	if seed {
		configslog.SLog.Info("İlk çalıştırma kontrolü yapılıyor...")
		if err := seeders.SeedSampleData(db); err != nil {
			configslog.Log.Error("Örnek veri yüklenemedi", zap.Error(err))
			return err
		}
	}

	return nil
}
