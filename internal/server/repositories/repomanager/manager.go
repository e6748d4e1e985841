package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/foodie/internal/dbx"
	"github.com/dmitrijs2005/foodie/internal/server/repositories/carts"
	"github.com/dmitrijs2005/foodie/internal/server/repositories/menu"
	"github.com/dmitrijs2005/foodie/internal/server/repositories/payments"
	"github.com/dmitrijs2005/foodie/internal/server/repositories/reviews"
	"github.com/dmitrijs2005/foodie/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Menu(db dbx.DBTX) menu.Repository
	Carts(db dbx.DBTX) carts.Repository
	Reviews(db dbx.DBTX) reviews.Repository
	Payments(db dbx.DBTX) payments.Repository
}
