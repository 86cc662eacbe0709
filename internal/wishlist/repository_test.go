package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_UpdateWishlist(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	items := []Item{{ID: "p1", Name: "Headphones", Price: 500}}

	t.Run("Success", func(t *testing.T) {
		payload, _ := json.Marshal(items)

		mock.ExpectExec("INSERT INTO wishlists").
			WithArgs(uint(1), payload).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateWishlist(context.Background(), 1, items))
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO wishlists").
			WillReturnError(errors.New("db error"))

		assert.Error(t, repo.UpdateWishlist(context.Background(), 1, items))
	})
}

func TestRepository_GetWishlist(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		items := []Item{{ID: "p1", Name: "Headphones", Price: 500}}
		payload, _ := json.Marshal(items)

		mock.ExpectQuery("SELECT items FROM wishlists").
			WithArgs(uint(1)).
			WillReturnRows(sqlmock.NewRows([]string{"items"}).AddRow(payload))

		got, err := repo.GetWishlist(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("NoRowIsEmptyList", func(t *testing.T) {
		mock.ExpectQuery("SELECT items FROM wishlists").
			WithArgs(uint(2)).
			WillReturnRows(sqlmock.NewRows([]string{"items"}))

		got, err := repo.GetWishlist(context.Background(), 2)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
