package configsdatabase

import (
	"hangs.link/configs/configsapp"
	"hangs.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB SQLite veritabanı bağlantısını açar.
// Depo tek cihazlık bir key-value koleksiyonu olduğu için gömülü SQLite yeterli.
func InitDB() {
	cfg := configsapp.GetConfig()

	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if cfg.Env != "production" {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	conn, err := gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantısı açılamadı", zap.String("path", cfg.DBPath), zap.Error(err))
	}

	db = conn
	configslog.SLog.Infof("Veritabanı bağlantısı hazır: %s", cfg.DBPath)
}

// GetDB aktif GORM bağlantısını döndürür.
func GetDB() *gorm.DB {
	if db == nil {
		InitDB()
	}
	return db
}

// SetDB test ortamında bağlantıyı değiştirmek için kullanılır.
func SetDB(conn *gorm.DB) {
	db = conn
}

// CloseDB altta yatan sql.DB bağlantısını kapatır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Veritabanı kapatılırken bağlantı alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
	}
}
