package handlers

import (
	"hangs.link/configs/configslog"
	"hangs.link/pkg/flashmessages"
	"hangs.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FriendHandler arkadaş ve arkadaş grubu yönetimini yönetir.
type FriendHandler struct {
	friendService services.IFriendService
}

// NewFriendHandler yeni bir FriendHandler örneği oluşturur.
func NewFriendHandler() *FriendHandler {
	return &FriendHandler{friendService: services.NewFriendService()}
}

// ListFriends arkadaşlar sayfasını gösterir.
// GET /panel/friends
func (h *FriendHandler) ListFriends(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	friends, err := h.friendService.ListFriends(c.UserContext())
	if err != nil {
		configslog.Log.Error("Panel - ListFriends error", zap.Error(err))
	}
	groups, err := h.friendService.ListGroups(c.UserContext())
	if err != nil {
		configslog.Log.Error("Panel - ListFriends: gruplar yüklenemedi", zap.Error(err))
	}

	return c.Render("panel/friends", fiber.Map{
		"Title":   "Friends",
		"Friends": friends,
		"Groups":  groups,
		"Flash":   flashData,
	}, "layouts/main")
}

// CreateFriend yeni arkadaş formunu işler.
// POST /panel/friends/create
func (h *FriendHandler) CreateFriend(c *fiber.Ctx) error {
	name := c.FormValue("name")
	phone := c.FormValue("phone")

	if _, err := h.friendService.CreateFriend(c.UserContext(), name, phone); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/friends", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Friend added.")
	return c.Redirect("/panel/friends", fiber.StatusSeeOther)
}

// CreateGroup yeni grup formunu işler.
// POST /panel/friends/groups/create
func (h *FriendHandler) CreateGroup(c *fiber.Ctx) error {
	name := c.FormValue("name")
	emoji := c.FormValue("emoji")
	color := c.FormValue("color")
	memberIDs := formValues(c, "members")

	if _, err := h.friendService.CreateGroup(c.UserContext(), name, emoji, color, memberIDs); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/friends", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Group created.")
	return c.Redirect("/panel/friends", fiber.StatusSeeOther)
}
