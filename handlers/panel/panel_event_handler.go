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

// EventHandler uygulama içi (owner) etkinlik akışını yönetir.
type EventHandler struct {
	eventService  services.IEventService
	friendService services.IFriendService
}

// NewEventHandler yeni bir EventHandler örneği oluşturur.
func NewEventHandler() *EventHandler {
	return &EventHandler{
		eventService:  services.NewEventService(),
		friendService: services.NewFriendService(),
	}
}

// deviceID cihaz çerezi middleware'inin koyduğu pseudo-identifier.
func deviceID(c *fiber.Ctx) string {
	id, _ := c.Locals("deviceID").(string)
	return id
}

// HomePage yaklaşan/geçmiş sekmeleriyle ana sayfayı gösterir.
// GET /panel/home
func (h *EventHandler) HomePage(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	upcoming, past, err := h.eventService.ListEvents(c.UserContext(), time.Now())
	if err != nil {
		configslog.Log.Error("Panel - HomePage: etkinlikler yüklenemedi", zap.Error(err))
		upcoming, past = nil, nil
	}

	activeTab := c.Query("tab", "home")
	if activeTab != "past" {
		activeTab = "home"
	}

	return c.Render("panel/home", fiber.Map{
		"Title":     "Let's Hang",
		"Upcoming":  upcoming,
		"Past":      past,
		"ActiveTab": activeTab,
		"Flash":     flashData,
	}, "layouts/main")
}

// ShowCreateEvent etkinlik oluşturma formunu gösterir.
// GET /panel/events/create
func (h *EventHandler) ShowCreateEvent(c *fiber.Ctx) error {
	friends, err := h.friendService.ListFriends(c.UserContext())
	if err != nil {
		configslog.Log.Error("Panel - ShowCreateEvent: arkadaşlar yüklenemedi", zap.Error(err))
	}
	groups, err := h.friendService.ListGroups(c.UserContext())
	if err != nil {
		configslog.Log.Error("Panel - ShowCreateEvent: gruplar yüklenemedi", zap.Error(err))
	}

	return c.Render("panel/event_form", fiber.Map{
		"Title":   "New Hang",
		"Friends": friends,
		"Groups":  groups,
	}, "layouts/main")
}

// CreateEvent oluşturma formunu işler.
// POST /panel/events/create
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	input := services.EventInput{
		Emoji:    c.FormValue("emoji"),
		Title:    c.FormValue("title"),
		Date:     c.FormValue("date"),
		Location: c.FormValue("location"),
		Vibe:     models.Vibe(c.FormValue("vibe")),
		Friends:  formValues(c, "friends"),
		GroupIDs: formValues(c, "groups"),
	}

	event, err := h.eventService.CreateEvent(c.UserContext(), input)
	if err != nil {
		configslog.Log.Warn("Panel - CreateEvent başarısız", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/events/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Hang created!")
	return c.Redirect("/panel/events/"+event.ID, fiber.StatusSeeOther)
}

// ShowEventDetail etkinlik detayını, roster'ı ve paylaşım metnini gösterir.
// GET /panel/events/:id
func (h *EventHandler) ShowEventDetail(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	event, err := h.eventService.GetEventByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return renderNotFound(c, "Event Not Found")
		}
		configslog.Log.Error("Panel - ShowEventDetail error", zap.String("id", c.Params("id")), zap.Error(err))
		return renderError(c, "Something went wrong loading this hang.")
	}

	permalink := sharetext.Permalink(configsapp.GetConfig().BaseURL, event.ID)
	return c.Render("panel/event_detail", fiber.Map{
		"Title":      event.Title,
		"Event":      event,
		"Roster":     rsvp.AttendeesByStatus(*event),
		"IsPast":     timeline.IsPast(*event, time.Now()),
		"Permalink":  permalink,
		"ShareText":  sharetext.FormatEventText(*event, permalink),
		"DateLabel":  sharetext.FormatEventDate(event.Date),
		"Flash":      flashData,
	}, "layouts/main")
}

// ShowUpdateEvent host için düzenleme formunu gösterir.
// GET /panel/events/:id/edit
func (h *EventHandler) ShowUpdateEvent(c *fiber.Ctx) error {
	event, err := h.eventService.GetEventByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return renderNotFound(c, "Event Not Found")
		}
		return renderError(c, "Something went wrong loading this hang.")
	}

	friends, _ := h.friendService.ListFriends(c.UserContext())
	groups, _ := h.friendService.ListGroups(c.UserContext())

	return c.Render("panel/event_form", fiber.Map{
		"Title":   "Edit Hang",
		"Event":   event,
		"Friends": friends,
		"Groups":  groups,
	}, "layouts/main")
}

// UpdateEvent tanımlayıcı alan güncellemesini işler (yalnızca host).
// POST /panel/events/:id/edit
func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	eventID := c.Params("id")
	input := services.EventInput{
		ID:       eventID,
		Emoji:    c.FormValue("emoji"),
		Title:    c.FormValue("title"),
		Date:     c.FormValue("date"),
		Location: c.FormValue("location"),
		Vibe:     models.Vibe(c.FormValue("vibe")),
		Friends:  formValues(c, "friends"),
		GroupIDs: formValues(c, "groups"),
	}

	if _, err := h.eventService.UpdateEvent(c.UserContext(), input); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return renderNotFound(c, "Event Not Found")
		}
		configslog.Log.Warn("Panel - UpdateEvent başarısız", zap.String("id", eventID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/events/"+eventID+"/edit", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Hang updated.")
	return c.Redirect("/panel/events/"+eventID, fiber.StatusSeeOther)
}

// SubmitRsvp lokal kullanıcının yanıtını işler ve detaya geri döner.
// Formda bulunmayan alanlar "verilmedi" sayılır; mevcut not/link korunur.
// POST /panel/events/:id/rsvp
func (h *EventHandler) SubmitRsvp(c *fiber.Ctx) error {
	eventID := c.Params("id")
	status := models.RsvpStatus(c.FormValue("status"))

	note := optionalFormValue(c, "note")
	photoLink := optionalFormValue(c, "photo_link")

	_, err := h.eventService.SubmitOwnerRsvp(c.UserContext(), eventID, deviceID(c), status, note, photoLink)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return renderNotFound(c, "Event Not Found")
		}
		configslog.Log.Warn("Panel - SubmitRsvp başarısız", zap.String("id", eventID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/events/"+eventID, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Response saved.")
	return c.Redirect("/panel/events/"+eventID, fiber.StatusSeeOther)
}

// formValues tekrar eden form alanını (checkbox listesi) okur. Hem urlencoded
// hem multipart gönderimler desteklenir.
func formValues(c *fiber.Ctx, key string) []string {
	var values []string
	for _, v := range c.Request().PostArgs().PeekMulti(key) {
		values = append(values, string(v))
	}
	if len(values) == 0 {
		if form, err := c.MultipartForm(); err == nil && form != nil {
			values = form.Value[key]
		}
	}
	return values
}

// optionalFormValue alan formda hiç yoksa nil döndürür; boş gönderilmiş alan
// açık temizleme anlamına gelir.
func optionalFormValue(c *fiber.Ctx, key string) *string {
	if !c.Request().PostArgs().Has(key) {
		return nil
	}
	value := c.FormValue(key)
	return &value
}

// renderNotFound standart 404 sayfasını render eder.
func renderNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Not Found",
		"Message": message,
	}, "layouts/main")
}

// renderError standart 500 sayfasını render eder.
func renderError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Something went wrong",
		"Message": message,
	}, "layouts/main")
}
