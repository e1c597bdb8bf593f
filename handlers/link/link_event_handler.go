package handlers

import (
	"errors"
	"time"

	"hangs.link/configs/configsapp"
	"hangs.link/configs/configslog"
	"hangs.link/models"
	"hangs.link/pkg/flashmessages"
	"hangs.link/pkg/rsvp"
	"hangs.link/pkg/sharetext"
	"hangs.link/pkg/timeline"
	"hangs.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LinkEventHandler public paylaşım linki akışını yönetir: /e/:id ile gelen
// anonim ziyaretçi etkinliği görür ve isim vererek RSVP bırakır.
type LinkEventHandler struct {
	guestService services.IGuestService
}

// NewLinkEventHandler yeni bir LinkEventHandler örneği oluşturur.
func NewLinkEventHandler() *LinkEventHandler {
	return &LinkEventHandler{guestService: services.NewGuestService()}
}

func deviceID(c *fiber.Ctx) string {
	id, _ := c.Locals("deviceID").(string)
	return id
}

// ShowEvent paylaşılan etkinlik sayfasını gösterir.
// GET /e/:id
func (h *LinkEventHandler) ShowEvent(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	view, err := h.guestService.GetEventForGuest(c.UserContext(), c.Params("id"), deviceID(c))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return h.renderNotFound(c)
		}
		configslog.Log.Error("Link - ShowEvent error", zap.String("id", c.Params("id")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
			"Title":   "Something went wrong",
			"Message": "We couldn't load this event.",
		}, "layouts/main")
	}

	permalink := sharetext.Permalink(configsapp.GetConfig().BaseURL, view.Event.ID)
	return c.Render("link/event_view", fiber.Map{
		"Title":       view.Event.Title,
		"Event":       view.Event,
		"Roster":      rsvp.AttendeesByStatus(view.Event),
		"IsPast":      timeline.IsPast(view.Event, time.Now()),
		"DisplayName": view.DisplayName,
		"NeedName":    view.DisplayName == "",
		"YourStatus":  view.YourStatus,
		"YourNote":    view.YourNote,
		"Permalink":   permalink,
		"ShareText":   sharetext.FormatEventText(view.Event, permalink),
		"DateLabel":   sharetext.FormatEventDate(view.Event.Date),
		"Flash":       flashData,
	}, "layouts/main")
}

// SubmitRsvp misafir yanıtını işler.
// Form isim ve durumu birlikte gönderir: ilk ziyaretinde ismi olmayan bir
// misafirin seçtiği durum, isim alınır alınmaz uygulanır; isimsiz hiçbir
// RSVP yazılmaz.
// POST /e/:id/rsvp
func (h *LinkEventHandler) SubmitRsvp(c *fiber.Ctx) error {
	eventID := c.Params("id")
	name := c.FormValue("name")
	status := models.RsvpStatus(c.FormValue("status"))

	var note *string
	if c.Request().PostArgs().Has("note") {
		value := c.FormValue("note")
		note = &value
	}
	var photoLink *string
	if c.Request().PostArgs().Has("photo_link") {
		value := c.FormValue("photo_link")
		photoLink = &value
	}

	_, err := h.guestService.SubmitGuestRsvp(c.UserContext(), eventID, deviceID(c), name, status, note, photoLink)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			return h.renderNotFound(c)
		case errors.Is(err, services.ErrGuestNameRequired):
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Tell us your name first, then pick again.")
		default:
			configslog.Log.Error("Link - SubmitRsvp error", zap.String("id", eventID), zap.Error(err))
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "We couldn't save your response.")
		}
		return c.Redirect("/e/"+eventID, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "You're on the list!")
	return c.Redirect("/e/"+eventID, fiber.StatusSeeOther)
}

// ShareText paylaşım entegrasyonları (pano, SMS, paylaşım sayfası) için
// biçimlenmiş daveti döndürür.
// GET /e/:id/share
func (h *LinkEventHandler) ShareText(c *fiber.Ctx) error {
	view, err := h.guestService.GetEventForGuest(c.UserContext(), c.Params("id"), deviceID(c))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "share text unavailable"})
	}

	permalink := sharetext.Permalink(configsapp.GetConfig().BaseURL, view.Event.ID)
	return c.JSON(fiber.Map{
		"url":  permalink,
		"text": sharetext.FormatEventText(view.Event, permalink),
	})
}

// renderNotFound eşleşmeyen id için "not found" sayfasını gösterir; ana
// sayfaya dönüş linki vardır, HTTP durumu dışında bir hata üretilmez.
func (h *LinkEventHandler) renderNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Event Not Found",
		"Message": "Sorry, we couldn't find the event you're looking for.",
	}, "layouts/main")
}
