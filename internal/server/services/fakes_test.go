package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/foodie/internal/common"
	"github.com/dmitrijs2005/foodie/internal/dbx"
	"github.com/dmitrijs2005/foodie/internal/server/models"
	"github.com/dmitrijs2005/foodie/internal/server/repositories/carts"
	"github.com/dmitrijs2005/foodie/internal/server/repositories/menu"
	"github.com/dmitrijs2005/foodie/internal/server/repositories/payments"
	"github.com/dmitrijs2005/foodie/internal/server/repositories/reviews"
	"github.com/dmitrijs2005/foodie/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

// fakeUsersRepo keeps users in memory, keyed by email.
type fakeUsersRepo struct {
	byEmail   map[string]*models.User
	created   []*models.User
	roleSet   map[string]string
	deleted   []string
	err       error
	createErr error
	countOut  int64
}

func newFakeUsersRepo(users ...*models.User) *fakeUsersRepo {
	f := &fakeUsersRepo{byEmail: map[string]*models.User{}, roleSet: map[string]string{}}
	for _, u := range users {
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = dbx.NewID()
	f.created = append(f.created, u)
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.User, 0, len(f.byEmail))
	for _, u := range f.byEmail {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsersRepo) SetRole(ctx context.Context, id string, role string) (*models.UpdateResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			f.roleSet[id] = role
			return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &models.UpdateResult{Acknowledged: true}, nil
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.deleted = append(f.deleted, id)
	return 1, nil
}

func (f *fakeUsersRepo) Count(ctx context.Context) (int64, error) {
	return f.countOut, f.err
}

type fakeMenuRepo struct {
	items    map[string]*models.MenuItem
	upserted []*models.MenuItem
	err      error
	countOut int64
}

func newFakeMenuRepo(items ...*models.MenuItem) *fakeMenuRepo {
	f := &fakeMenuRepo{items: map[string]*models.MenuItem{}}
	for _, it := range items {
		f.items[it.ID] = it
	}
	return f
}

func (f *fakeMenuRepo) List(ctx context.Context) ([]*models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.MenuItem, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeMenuRepo) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	it, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return it, nil
}

func (f *fakeMenuRepo) Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	item.ID = dbx.NewID()
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeMenuRepo) Upsert(ctx context.Context, item *models.MenuItem) (*models.UpdateResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.upserted = append(f.upserted, item)
	if _, ok := f.items[item.ID]; ok {
		f.items[item.ID] = item
		return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	f.items[item.ID] = item
	id := item.ID
	return &models.UpdateResult{Acknowledged: true, UpsertedID: &id}, nil
}

func (f *fakeMenuRepo) Delete(ctx context.Context, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.items[id]; !ok {
		return 0, nil
	}
	delete(f.items, id)
	return 1, nil
}

func (f *fakeMenuRepo) Count(ctx context.Context) (int64, error) {
	return f.countOut, f.err
}

type fakeCartsRepo struct {
	entries     []*models.CartEntry
	deletedMany [][]string
	err         error
	deleteErr   error
}

func (f *fakeCartsRepo) ListByEmail(ctx context.Context, email string) ([]*models.CartEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.CartEntry, 0)
	for _, e := range f.entries {
		if e.Email == email {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeCartsRepo) Create(ctx context.Context, entry *models.CartEntry) (*models.CartEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	entry.ID = dbx.NewID()
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeCartsRepo) DeleteOwned(ctx context.Context, id string, email string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	for i, e := range f.entries {
		if e.ID == id && e.Email == email {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeCartsRepo) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	f.deletedMany = append(f.deletedMany, ids)
	return int64(len(ids)), nil
}

type fakeReviewsRepo struct {
	list    []*models.Review
	created []*models.Review
	err     error
}

func (f *fakeReviewsRepo) List(ctx context.Context) ([]*models.Review, error) {
	return f.list, f.err
}

func (f *fakeReviewsRepo) Create(ctx context.Context, r *models.Review) (*models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	r.ID = dbx.NewID()
	f.created = append(f.created, r)
	return r, nil
}

type fakePaymentsRepo struct {
	created  []*models.Payment
	byEmail  map[string][]*models.Payment
	totals   []float64
	countOut int64
	err      error
}

func (f *fakePaymentsRepo) Create(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	p.ID = dbx.NewID()
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakePaymentsRepo) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	if list, ok := f.byEmail[email]; ok {
		return list, nil
	}
	return []*models.Payment{}, nil
}

func (f *fakePaymentsRepo) Count(ctx context.Context) (int64, error) {
	return f.countOut, f.err
}

func (f *fakePaymentsRepo) Totals(ctx context.Context) ([]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.totals, nil
}

// fakeRepoManager hands out the same fake for the pool and for transactions,
// and records which handles were passed in.
type fakeRepoManager struct {
	users    *fakeUsersRepo
	menu     *fakeMenuRepo
	carts    *fakeCartsRepo
	reviews  *fakeReviewsRepo
	payments *fakePaymentsRepo

	handles []dbx.DBTX
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:    newFakeUsersRepo(),
		menu:     newFakeMenuRepo(),
		carts:    &fakeCartsRepo{},
		reviews:  &fakeReviewsRepo{},
		payments: &fakePaymentsRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository {
	m.handles = append(m.handles, db)
	return m.users
}

func (m *fakeRepoManager) Menu(db dbx.DBTX) menu.Repository {
	m.handles = append(m.handles, db)
	return m.menu
}

func (m *fakeRepoManager) Carts(db dbx.DBTX) carts.Repository {
	m.handles = append(m.handles, db)
	return m.carts
}

func (m *fakeRepoManager) Reviews(db dbx.DBTX) reviews.Repository {
	m.handles = append(m.handles, db)
	return m.reviews
}

func (m *fakeRepoManager) Payments(db dbx.DBTX) payments.Repository {
	m.handles = append(m.handles, db)
	return m.payments
}
