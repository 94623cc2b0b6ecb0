package services

import (
	"context"

	"barterBack/internal/models"
)

// Store interfaces abstract the repositories so services can be exercised
// against in-memory fakes. The SQL repositories in internal/repositories
// satisfy them.

type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	CreateSession(ctx context.Context, session models.Session) error
	GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error)
}

type CategoryStore interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByName(ctx context.Context, name string) (models.Category, error)
}

type ConditionStore interface {
	GetAllConditions(ctx context.Context) ([]models.Condition, error)
	GetConditionByName(ctx context.Context, name string) (models.Condition, error)
}

type AdStore interface {
	CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error)
	GetAdByID(ctx context.Context, id int) (models.Ad, error)
	GetAdByIDAndUserID(ctx context.Context, id, userID int) (models.Ad, error)
	UpdateAd(ctx context.Context, ad models.Ad) error
	DeleteAdByIDAndUserID(ctx context.Context, id, userID int) error
	GetAdsFiltered(ctx context.Context, search models.AdSearch) ([]models.Ad, error)
}

type ExchangeStore interface {
	CreateExchange(ctx context.Context, exchange models.ExchangeProposal) (models.ExchangeProposal, error)
	GetExchangeByID(ctx context.Context, id int) (models.ExchangeProposal, error)
	UpdateExchangeStatus(ctx context.Context, id int, status string) error
	GetExchangesFiltered(ctx context.Context, search models.ExchangeSearch) ([]models.ExchangeProposal, error)
}

// StatusNotifier delivers exchange events to connected clients. A nil
// notifier disables delivery; notification failures never fail the
// operation.
type StatusNotifier interface {
	NotifyExchange(userID int, event models.ExchangeEvent)
}
