package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"barterBack/internal/models"
)

// In-memory stores for exercising the services without a database.

type fakeUserStore struct {
	users    map[string]models.User
	sessions map[string]models.Session
}

func newFakeUserStore(users ...models.User) *fakeUserStore {
	s := &fakeUserStore{
		users:    make(map[string]models.User),
		sessions: make(map[string]models.Session),
	}
	for _, u := range users {
		s.users[u.Username] = u
	}
	return s
}

func (s *fakeUserStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if _, ok := s.users[user.Username]; ok {
		return models.User{}, models.ErrDuplicateUsername
	}
	user.ID = len(s.users) + 1
	s.users[user.Username] = user
	return user, nil
}

func (s *fakeUserStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	user, ok := s.users[username]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserStore) CreateSession(ctx context.Context, session models.Session) error {
	s.sessions[session.RefreshToken] = session
	return nil
}

func (s *fakeUserStore) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	session, ok := s.sessions[refreshToken]
	if !ok {
		return models.Session{}, models.ErrNoRecord
	}
	return session, nil
}

type fakeCategoryStore struct {
	categories []models.Category
}

func (s *fakeCategoryStore) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories, nil
}

func (s *fakeCategoryStore) GetCategoryByName(ctx context.Context, name string) (models.Category, error) {
	for _, c := range s.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return models.Category{}, models.ErrCategoryNotFound
}

type fakeConditionStore struct {
	conditions []models.Condition
}

func (s *fakeConditionStore) GetAllConditions(ctx context.Context) ([]models.Condition, error) {
	return s.conditions, nil
}

func (s *fakeConditionStore) GetConditionByName(ctx context.Context, name string) (models.Condition, error) {
	for _, c := range s.conditions {
		if c.Name == name {
			return c, nil
		}
	}
	return models.Condition{}, models.ErrConditionNotFound
}

type fakeAdStore struct {
	ads    map[int]models.Ad
	nextID int
}

func newFakeAdStore() *fakeAdStore {
	return &fakeAdStore{ads: make(map[int]models.Ad), nextID: 1}
}

func (s *fakeAdStore) CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error) {
	ad.ID = s.nextID
	s.nextID++
	if ad.CreatedAt.IsZero() {
		ad.CreatedAt = time.Now()
	}
	s.ads[ad.ID] = ad
	return ad, nil
}

func (s *fakeAdStore) GetAdByID(ctx context.Context, id int) (models.Ad, error) {
	ad, ok := s.ads[id]
	if !ok {
		return models.Ad{}, models.ErrAdNotFound
	}
	return ad, nil
}

func (s *fakeAdStore) GetAdByIDAndUserID(ctx context.Context, id, userID int) (models.Ad, error) {
	ad, ok := s.ads[id]
	if !ok || ad.UserID != userID {
		return models.Ad{}, models.ErrAdNotFound
	}
	return ad, nil
}

func (s *fakeAdStore) UpdateAd(ctx context.Context, ad models.Ad) error {
	stored, ok := s.ads[ad.ID]
	if !ok {
		return models.ErrAdNotFound
	}
	stored.Title = ad.Title
	stored.Description = ad.Description
	stored.Category = ad.Category
	stored.Condition = ad.Condition
	s.ads[ad.ID] = stored
	return nil
}

func (s *fakeAdStore) DeleteAdByIDAndUserID(ctx context.Context, id, userID int) error {
	ad, ok := s.ads[id]
	if !ok || ad.UserID != userID {
		return models.ErrAdNotFound
	}
	delete(s.ads, id)
	return nil
}

func (s *fakeAdStore) GetAdsFiltered(ctx context.Context, search models.AdSearch) ([]models.Ad, error) {
	var matched []models.Ad
	query := strings.ToLower(search.Query)
	for _, ad := range s.ads {
		if query != "" &&
			!strings.Contains(strings.ToLower(ad.Title), query) &&
			!strings.Contains(strings.ToLower(ad.Description), query) {
			continue
		}
		if len(search.CategoryIDs) > 0 && (ad.Category == nil || !containsInt(search.CategoryIDs, ad.Category.ID)) {
			continue
		}
		if len(search.ConditionIDs) > 0 && (ad.Condition == nil || !containsInt(search.ConditionIDs, ad.Condition.ID)) {
			continue
		}
		matched = append(matched, ad)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	if search.Offset >= len(matched) {
		return []models.Ad{}, nil
	}
	matched = matched[search.Offset:]
	if search.Limit > 0 && len(matched) > search.Limit {
		matched = matched[:search.Limit]
	}
	return matched, nil
}

type fakeExchangeStore struct {
	exchanges map[int]models.ExchangeProposal
	nextID    int
}

func newFakeExchangeStore() *fakeExchangeStore {
	return &fakeExchangeStore{exchanges: make(map[int]models.ExchangeProposal), nextID: 1}
}

func (s *fakeExchangeStore) CreateExchange(ctx context.Context, exchange models.ExchangeProposal) (models.ExchangeProposal, error) {
	exchange.ID = s.nextID
	s.nextID++
	if exchange.CreatedAt.IsZero() {
		exchange.CreatedAt = time.Now()
	}
	s.exchanges[exchange.ID] = exchange
	return exchange, nil
}

func (s *fakeExchangeStore) GetExchangeByID(ctx context.Context, id int) (models.ExchangeProposal, error) {
	exchange, ok := s.exchanges[id]
	if !ok {
		return models.ExchangeProposal{}, models.ErrExchangeNotFound
	}
	return exchange, nil
}

func (s *fakeExchangeStore) UpdateExchangeStatus(ctx context.Context, id int, status string) error {
	exchange, ok := s.exchanges[id]
	if !ok {
		return models.ErrExchangeNotFound
	}
	exchange.Status = status
	s.exchanges[id] = exchange
	return nil
}

func (s *fakeExchangeStore) GetExchangesFiltered(ctx context.Context, search models.ExchangeSearch) ([]models.ExchangeProposal, error) {
	panic("use adBackedExchangeStore for filtered listing")
}

// adBackedExchangeStore joins the exchange filter against an ad store the
// way the SQL repository joins against the ads table.
type adBackedExchangeStore struct {
	*fakeExchangeStore
	ads *fakeAdStore
}

func (s *adBackedExchangeStore) GetExchangesFiltered(ctx context.Context, search models.ExchangeSearch) ([]models.ExchangeProposal, error) {
	var matched []models.ExchangeProposal
	for _, exchange := range s.exchanges {
		senderAd, ok := s.ads.ads[exchange.AdSenderID]
		if !ok {
			continue
		}
		receiverAd, ok := s.ads.ads[exchange.AdReceiverID]
		if !ok {
			continue
		}
		if search.SenderUserID != nil && senderAd.UserID != *search.SenderUserID {
			continue
		}
		if search.ReceiverUserID != nil && receiverAd.UserID != *search.ReceiverUserID {
			continue
		}
		if len(search.Statuses) > 0 && !containsString(search.Statuses, exchange.Status) {
			continue
		}
		matched = append(matched, exchange)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched, nil
}

type fakeNotifier struct {
	userIDs []int
	events  []models.ExchangeEvent
}

func (n *fakeNotifier) NotifyExchange(userID int, event models.ExchangeEvent) {
	n.userIDs = append(n.userIDs, userID)
	n.events = append(n.events, event)
}

func containsInt(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
