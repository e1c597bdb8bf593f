package services

import (
	"context"
	"strings"

	"hangs.link/models"
	"hangs.link/repositories"

	"github.com/google/uuid"
)

// FriendServiceError arkadaş servisi hataları.
type FriendServiceError string

func (e FriendServiceError) Error() string { return string(e) }

const (
	ErrFriendNameRequired FriendServiceError = "friend name is required"
	ErrGroupNameRequired  FriendServiceError = "group name is required"
	ErrGroupNotFound      FriendServiceError = "friend group not found"
)

// avatarPalette yeni arkadaşlara sırayla atanan renkler.
var avatarPalette = []string{
	"#4ade80", // green
	"#f472b6", // pink
	"#3b82f6", // blue
	"#f97316", // orange
	"#8b5cf6", // violet
	"#06b6d4", // cyan
}

// IFriendService arkadaş ve arkadaş grubu işlemleri için arayüz.
// Silme işlemi yoktur; kaynakta da tanımlı değildir.
type IFriendService interface {
	CreateFriend(ctx context.Context, name, phone string) (*models.Friend, error)
	ListFriends(ctx context.Context) ([]models.Friend, error)
	CreateGroup(ctx context.Context, name, emoji, color string, memberIDs []string) (*models.FriendGroup, error)
	ListGroups(ctx context.Context) ([]models.FriendGroup, error)
	ExpandGroupMembers(ctx context.Context, groupIDs []string) ([]string, error)
}

// FriendService IFriendService arayüzünü uygular.
type FriendService struct {
	repo repositories.IFriendRepository
}

// NewFriendService yeni bir FriendService örneği oluşturur.
func NewFriendService() IFriendService {
	return &FriendService{repo: repositories.NewFriendRepository()}
}

// NewFriendServiceWithRepo test ortamında repo vermek için.
func NewFriendServiceWithRepo(repo repositories.IFriendRepository) IFriendService {
	return &FriendService{repo: repo}
}

// CreateFriend yeni bir arkadaş kaydeder. Avatar harfi isimden türetilir,
// renk paletten sırayla seçilir.
func (s *FriendService) CreateFriend(ctx context.Context, name, phone string) (*models.Friend, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrFriendNameRequired
	}

	friends, err := s.repo.LoadFriends(ctx)
	if err != nil {
		return nil, err
	}

	friend := models.Friend{
		ID:     uuid.NewString(),
		Name:   trimmed,
		Phone:  strings.TrimSpace(phone),
		Avatar: strings.ToUpper(string([]rune(trimmed)[0])),
		Color:  avatarPalette[len(friends)%len(avatarPalette)],
	}

	friends = append(friends, friend)
	if err := s.repo.SaveFriends(ctx, friends); err != nil {
		return nil, err
	}
	return &friend, nil
}

// ListFriends tüm arkadaşları döndürür.
func (s *FriendService) ListFriends(ctx context.Context) ([]models.Friend, error) {
	return s.repo.LoadFriends(ctx)
}

// CreateGroup yeni bir arkadaş grubu kaydeder. Üyeler Friend.ID ile tutulur;
// grup yalnızca etkinlik oluşturma anında davet listesini doldurmak içindir.
func (s *FriendService) CreateGroup(ctx context.Context, name, emoji, color string, memberIDs []string) (*models.FriendGroup, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrGroupNameRequired
	}

	groups, err := s.repo.LoadGroups(ctx)
	if err != nil {
		return nil, err
	}

	group := models.FriendGroup{
		ID:      uuid.NewString(),
		Name:    trimmed,
		Emoji:   emoji,
		Color:   color,
		Members: append([]string(nil), memberIDs...),
	}

	groups = append(groups, group)
	if err := s.repo.SaveGroups(ctx, groups); err != nil {
		return nil, err
	}
	return &group, nil
}

// ListGroups tüm grupları döndürür.
func (s *FriendService) ListGroups(ctx context.Context) ([]models.FriendGroup, error) {
	return s.repo.LoadGroups(ctx)
}

// ExpandGroupMembers verilen grupların üyelerini görünen isim listesine açar.
// Etkinlik isimle denormalize tutulduğu için dönüş id değil isimdir; silinmiş
// ya da bilinmeyen üye id'leri sessizce atlanır.
func (s *FriendService) ExpandGroupMembers(ctx context.Context, groupIDs []string) ([]string, error) {
	if len(groupIDs) == 0 {
		return nil, nil
	}

	groups, err := s.repo.LoadGroups(ctx)
	if err != nil {
		return nil, err
	}
	friends, err := s.repo.LoadFriends(ctx)
	if err != nil {
		return nil, err
	}

	nameByID := make(map[string]string, len(friends))
	for _, friend := range friends {
		nameByID[friend.ID] = friend.Name
	}

	wanted := make(map[string]bool, len(groupIDs))
	for _, id := range groupIDs {
		wanted[id] = true
	}

	var names []string
	matched := false
	for _, group := range groups {
		if !wanted[group.ID] {
			continue
		}
		matched = true
		for _, memberID := range group.Members {
			if name, ok := nameByID[memberID]; ok {
				names = append(names, name)
			}
		}
	}
	if !matched {
		return nil, ErrGroupNotFound
	}
	return names, nil
}

var _ IFriendService = (*FriendService)(nil)
