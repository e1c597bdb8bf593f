package routes

import (
	handlers "hangs.link/handlers/link"

	"github.com/gofiber/fiber/v2"
)

// registerLinkRoutes public paylaşım linki rotalarını (/e/{id}) tanımlar.
// Ağ üzerinden bir fetch yoktur; id doğrudan kalıcı koleksiyonda aranır ve
// eşleşmeyen id "not found" sayfası gösterir.
func registerLinkRoutes(app *fiber.App) {
	linkHandler := handlers.NewLinkEventHandler()

	app.Get("/e/:id", linkHandler.ShowEvent)        // GET  /e/{id}
	app.Post("/e/:id/rsvp", linkHandler.SubmitRsvp) // POST /e/{id}/rsvp
	app.Get("/e/:id/share", linkHandler.ShareText)  // GET  /e/{id}/share
}
