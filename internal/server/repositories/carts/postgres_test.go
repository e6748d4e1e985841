package carts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/foodie/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresRepository(db), mock
}

var cartColumns = []string{"id", "menu_item_id", "name", "image", "price", "email", "created_at"}

func TestListByEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)FROM\s+carts\s+WHERE\s+email\s*=\s*\$1`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows(cartColumns).
			AddRow("c-1", "m-1", "Soup", "s.png", 4.5, "a@x.com", time.Now()))

	got, err := repo.ListByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m-1", got[0].MenuItemID)
	assert.Equal(t, "a@x.com", got[0].Email)
}

func TestListByEmail_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+carts`).WillReturnError(errors.New("boom"))

	_, err := repo.ListByEmail(context.Background(), "a@x.com")
	assert.ErrorContains(t, err, "db error: boom")
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+carts`).
		WithArgs(sqlmock.AnyArg(), "m-1", "Soup", "s.png", 4.5, "a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	got, err := repo.Create(context.Background(), &models.CartEntry{MenuItemID: "m-1", Name: "Soup", Image: "s.png", Price: 4.5, Email: "a@x.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
}

func TestDeleteOwned(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+carts\s+WHERE\s+id\s*=\s*\$1\s+AND\s+email\s*=\s*\$2`).
		WithArgs("c-1", "a@x.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.DeleteOwned(context.Background(), "c-1", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestDeleteMany(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+carts\s+WHERE\s+id\s+IN\s+\(\$1,\s*\$2\)`).
		WithArgs("c-1", "c-2").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.DeleteMany(context.Background(), []string{"c-1", "c-2"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestDeleteMany_EmptyDoesNotQuery(t *testing.T) {
	repo, _ := newRepoWithMock(t)

	n, err := repo.DeleteMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestDeleteMany_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+carts`).WillReturnError(errors.New("boom"))

	_, err := repo.DeleteMany(context.Background(), []string{"c-1"})
	assert.ErrorContains(t, err, "db error: boom")
}
