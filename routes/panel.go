package routes

import (
	handlers "hangs.link/handlers/panel"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes /panel altındaki uygulama içi (owner) rotaları tanımlar.
func registerPanelRoutes(app *fiber.App) {
	eventHandler := handlers.NewEventHandler()
	friendHandler := handlers.NewFriendHandler()

	panelGroup := app.Group("/panel")

	// --- Ana Sayfa ---
	panelGroup.Get("/home", eventHandler.HomePage) // GET /panel/home (?tab=past)

	// --- Etkinlikler ---
	panelGroup.Get("/events/create", eventHandler.ShowCreateEvent)   // GET  /panel/events/create
	panelGroup.Post("/events/create", eventHandler.CreateEvent)      // POST /panel/events/create
	panelGroup.Get("/events/:id", eventHandler.ShowEventDetail)      // GET  /panel/events/{id}
	panelGroup.Get("/events/:id/edit", eventHandler.ShowUpdateEvent) // GET  /panel/events/{id}/edit
	panelGroup.Post("/events/:id/edit", eventHandler.UpdateEvent)    // POST /panel/events/{id}/edit
	panelGroup.Post("/events/:id/rsvp", eventHandler.SubmitRsvp)     // POST /panel/events/{id}/rsvp

	// --- Arkadaşlar ---
	panelGroup.Get("/friends", friendHandler.ListFriends)                // GET  /panel/friends
	panelGroup.Post("/friends/create", friendHandler.CreateFriend)       // POST /panel/friends/create
	panelGroup.Post("/friends/groups/create", friendHandler.CreateGroup) // POST /panel/friends/groups/create
}
