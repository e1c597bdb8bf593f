package flashmessages

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Flash mesaj anahtarları.
const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
)

// FlashData bir sonraki sayfa yüklemesinde gösterilecek mesajlar.
type FlashData struct {
	Success string
	Error   string
}

// SetFlashMessage mesajı kısa ömürlü bir çereze yazar; redirect sonrası ilk
// okumada silinir. Mesaj boşluk ve noktalama içerebildiği için encode edilir.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	c.Cookie(&fiber.Cookie{
		Name:     key,
		Value:    url.QueryEscape(message),
		Path:     "/",
		Expires:  time.Now().Add(time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// GetFlashMessages bekleyen mesajları okur ve çerezleri temizler.
func GetFlashMessages(c *fiber.Ctx) (FlashData, error) {
	data := FlashData{
		Success: decodeFlash(c.Cookies(FlashSuccessKey)),
		Error:   decodeFlash(c.Cookies(FlashErrorKey)),
	}
	for _, key := range []string{FlashSuccessKey, FlashErrorKey} {
		if c.Cookies(key) != "" {
			c.Cookie(&fiber.Cookie{
				Name:    key,
				Value:   "",
				Path:    "/",
				Expires: time.Now().Add(-time.Hour),
			})
		}
	}
	return data, nil
}

func decodeFlash(value string) string {
	decoded, err := url.QueryUnescape(value)
	if err != nil {
		return value
	}
	return decoded
}
