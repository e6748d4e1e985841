package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/foodie/internal/common"
	"github.com/dmitrijs2005/foodie/internal/logging"
	"github.com/dmitrijs2005/foodie/internal/server/auth"
	"github.com/dmitrijs2005/foodie/internal/server/config"
	"github.com/dmitrijs2005/foodie/internal/server/models"
	"github.com/dmitrijs2005/foodie/internal/server/services"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeUsers struct {
	admins   map[string]bool
	list     []*models.User
	created  []*models.User
	promoted []string
	deleted  []string
	err      error
}

func (f *fakeUsers) List(ctx context.Context) ([]*models.User, error) { return f.list, f.err }

func (f *fakeUsers) Create(ctx context.Context, u *models.User) (*models.CreateUserResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, u)
	return &models.CreateUserResult{InsertResult: *models.Inserted("u-1")}, nil
}

func (f *fakeUsers) IsAdmin(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.admins[email], nil
}

func (f *fakeUsers) Promote(ctx context.Context, id string) (*models.UpdateResult, error) {
	f.promoted = append(f.promoted, id)
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeUsers) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	f.deleted = append(f.deleted, id)
	return models.Deleted(1), nil
}

type fakeMenu struct {
	items   map[string]*models.MenuItem
	created []*models.MenuItem
	err     error
}

func (f *fakeMenu) List(ctx context.Context) ([]*models.MenuItem, error) {
	out := make([]*models.MenuItem, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	return out, f.err
}

func (f *fakeMenu) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	it, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return it, nil
}

func (f *fakeMenu) Create(ctx context.Context, item *models.MenuItem) (*models.InsertResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, item)
	return models.Inserted("m-1"), nil
}

func (f *fakeMenu) Update(ctx context.Context, id string, item *models.MenuItem) (*models.UpdateResult, error) {
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, f.err
}

func (f *fakeMenu) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	return models.Deleted(1), f.err
}

type fakeImages struct{}

func (fakeImages) PresignUpload(ctx context.Context) (*models.MenuImageUpload, error) {
	return &models.MenuImageUpload{Key: "menu/2024/03/07/k", URL: "http://s3/menu/k"}, nil
}

type fakeCarts struct {
	entries []*models.CartEntry
	added   []*models.CartEntry
	removed [][2]string
}

func (f *fakeCarts) List(ctx context.Context, email string) ([]*models.CartEntry, error) {
	out := make([]*models.CartEntry, 0)
	for _, e := range f.entries {
		if e.Email == email {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeCarts) Add(ctx context.Context, entry *models.CartEntry) (*models.InsertResult, error) {
	f.added = append(f.added, entry)
	return models.Inserted("c-1"), nil
}

func (f *fakeCarts) Remove(ctx context.Context, id, email string) (*models.DeleteResult, error) {
	f.removed = append(f.removed, [2]string{id, email})
	return models.Deleted(1), nil
}

type fakeReviews struct {
	list    []*models.Review
	created []*models.Review
}

func (f *fakeReviews) List(ctx context.Context) ([]*models.Review, error) { return f.list, nil }

func (f *fakeReviews) Create(ctx context.Context, r *models.Review) (*models.InsertResult, error) {
	f.created = append(f.created, r)
	return models.Inserted("r-1"), nil
}

type fakePayments struct {
	recorded []*models.Payment
	history  map[string][]*models.Payment
}

func (f *fakePayments) Record(ctx context.Context, p *models.Payment) (*models.PaymentResult, error) {
	f.recorded = append(f.recorded, p)
	return &models.PaymentResult{
		InsertResult: models.Inserted("p-1"),
		DeleteResult: models.Deleted(int64(len(p.CartItems))),
	}, nil
}

func (f *fakePayments) History(ctx context.Context, email string) ([]*models.Payment, error) {
	return f.history[email], nil
}

type fakeIntents struct {
	totals []float64
	secret string
	err    error
}

func (f *fakeIntents) CreateIntent(ctx context.Context, total float64) (string, error) {
	f.totals = append(f.totals, total)
	return f.secret, f.err
}

type fakeStats struct{ out *models.AdminStats }

func (f fakeStats) Stats(ctx context.Context) (*models.AdminStats, error) { return f.out, nil }

type testEnv struct {
	router   http.Handler
	users    *fakeUsers
	menu     *fakeMenu
	carts    *fakeCarts
	reviews  *fakeReviews
	payments *fakePayments
	intents  *fakeIntents
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		users:    &fakeUsers{admins: map[string]bool{"admin@x.com": true}},
		menu:     &fakeMenu{items: map[string]*models.MenuItem{}},
		carts:    &fakeCarts{},
		reviews:  &fakeReviews{},
		payments: &fakePayments{history: map[string][]*models.Payment{}},
		intents:  &fakeIntents{secret: "pi_secret"},
	}
	cfg := &config.Config{SecretKey: testSecret, AccessTokenValidityDuration: time.Hour}
	h := NewHandler(Handler{
		Tokens:   services.NewTokenService(cfg),
		Users:    env.users,
		Menu:     env.menu,
		Images:   fakeImages{},
		Carts:    env.carts,
		Reviews:  env.reviews,
		Payments: env.payments,
		Intents:  env.intents,
		Stats:    fakeStats{out: &models.AdminStats{Users: 2, FoodItem: 3, Orders: 1, Revenue: 31}},
	}, logging.Nop())
	env.router = NewRouter(h, []string{"https://shop.example"})
	return env
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	tok, err := auth.GenerateToken(auth.Identity{Email: email}, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return tok
}

// do sends the request; token may be empty, body may be nil or a value to
// encode, or a raw string.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}
