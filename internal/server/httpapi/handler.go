// Package httpapi is the public HTTP/JSON surface: a chi router, the
// bearer-token and admin gates, and one handler per (verb, resource).
package httpapi

import (
	"context"

	"github.com/dmitrijs2005/foodie/internal/logging"
	"github.com/dmitrijs2005/foodie/internal/server/auth"
	"github.com/dmitrijs2005/foodie/internal/server/models"
)

type TokenService interface {
	Issue(identity auth.Identity) (string, error)
	Verify(token string) (*auth.Claims, error)
}

type UserService interface {
	List(ctx context.Context) ([]*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.CreateUserResult, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	Promote(ctx context.Context, id string) (*models.UpdateResult, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

type MenuService interface {
	List(ctx context.Context) ([]*models.MenuItem, error)
	Get(ctx context.Context, id string) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) (*models.InsertResult, error)
	Update(ctx context.Context, id string, item *models.MenuItem) (*models.UpdateResult, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

type ImageStore interface {
	PresignUpload(ctx context.Context) (*models.MenuImageUpload, error)
}

type CartService interface {
	List(ctx context.Context, email string) ([]*models.CartEntry, error)
	Add(ctx context.Context, entry *models.CartEntry) (*models.InsertResult, error)
	Remove(ctx context.Context, id, email string) (*models.DeleteResult, error)
}

type ReviewService interface {
	List(ctx context.Context) ([]*models.Review, error)
	Create(ctx context.Context, review *models.Review) (*models.InsertResult, error)
}

type PaymentService interface {
	Record(ctx context.Context, payment *models.Payment) (*models.PaymentResult, error)
	History(ctx context.Context, email string) ([]*models.Payment, error)
}

type PaymentIntents interface {
	CreateIntent(ctx context.Context, total float64) (string, error)
}

type StatsService interface {
	Stats(ctx context.Context) (*models.AdminStats, error)
}

// Handler holds the services every route delegates to.
type Handler struct {
	Tokens   TokenService
	Users    UserService
	Menu     MenuService
	Images   ImageStore
	Carts    CartService
	Reviews  ReviewService
	Payments PaymentService
	Intents  PaymentIntents
	Stats    StatsService

	logger logging.Logger
}

func NewHandler(h Handler, logger logging.Logger) *Handler {
	h.logger = logger.With("module", "http")
	return &h
}
