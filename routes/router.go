package routes

import (
	"time"

	"hangs.link/pkg/identity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// deviceCookieName dönen ziyaretçiyi tanımaya yarayan pseudo-identifier çerezi.
const deviceCookieName = "hang_device"

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(ensureDeviceIdentifier())

	registerPanelRoutes(app)

	// Public link rotaları özel gruplardan sonra gelir.
	registerLinkRoutes(app)

	app.Get("/", rootRedirector)

	// Eşleşmeyen tüm rotalar.
	app.Use(notFoundHandler)
}

// ensureDeviceIdentifier her tarayıcıya bir kez pseudo-identifier atar ve
// handler'ların erişmesi için locals'a koyar. Çerez kabul etmeyen istemci her
// istekte yeni kimlik alır; bu ölümcül değildir, sadece dönen misafir olarak
// tanınmaz.
func ensureDeviceIdentifier() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(deviceCookieName)
		if id == "" {
			id = identity.GenerateIdentifier(c.Get(fiber.HeaderUserAgent), c.IP())
			c.Cookie(&fiber.Cookie{
				Name:     deviceCookieName,
				Value:    id,
				Path:     "/",
				Expires:  time.Now().AddDate(1, 0, 0),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals("deviceID", id)
		return c.Next()
	}
}

func rootRedirector(c *fiber.Ctx) error {
	return c.Redirect("/panel/home", fiber.StatusFound)
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
			"Title":   "Not Found",
			"Message": "The page you're looking for doesn't exist.",
		}, "layouts/main")
	}
}
