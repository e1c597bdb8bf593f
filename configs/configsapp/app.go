package configsapp

import (
	"os"

	"hangs.link/configs/configslog"

	"github.com/joho/godotenv"
)

// AppConfig uygulamanın .env üzerinden okunan ayarları.
type AppConfig struct {
	Port    string // APP_PORT, varsayılan 3000
	BaseURL string // APP_BASE_URL, paylaşım linkleri için (örn. https://hangs.link)
	DBPath  string // DB_PATH, SQLite dosya yolu
	Env     string // APP_ENV (development | production)
}

var config *AppConfig

// LoadConfig .env dosyasını (varsa) okur ve AppConfig'i doldurur.
// .env yoksa ortam değişkenleriyle devam edilir, hata sayılmaz.
func LoadConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env dosyası bulunamadı, ortam değişkenleri kullanılacak.")
	}

	config = &AppConfig{
		Port:    getEnv("APP_PORT", "3000"),
		BaseURL: getEnv("APP_BASE_URL", "http://localhost:3000"),
		DBPath:  getEnv("DB_PATH", "hangs.db"),
		Env:     getEnv("APP_ENV", "development"),
	}
	return config
}

// GetConfig yüklü konfigürasyonu döndürür. LoadConfig çağrılmadıysa yükler.
func GetConfig() *AppConfig {
	if config == nil {
		return LoadConfig()
	}
	return config
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
