package review

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Add(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	rv := &Review{
		ID:        "rev-1",
		ProductID: "prod-1",
		UserID:    7,
		UserName:  "customer@example.com",
		Rating:    4,
		Comment:   "solid build",
	}

	t.Run("insert and aggregate commit together", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews")).
			WithArgs(rv.ID, rv.ProductID, rv.UserID, rv.UserName, rv.Rating, rv.Comment, rv.IsVerified).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		mock.ExpectQuery(regexp.QuoteMeta("review_count = review_count + 1")).
			WithArgs(rv.Rating, rv.ProductID).
			WillReturnRows(sqlmock.NewRows([]string{"rating", "review_count"}).AddRow(3.1, 10))
		mock.ExpectCommit()

		summary, err := repo.Add(ctx, rv)
		require.NoError(t, err)
		assert.InDelta(t, 3.1, summary.Rating, 1e-9)
		assert.Equal(t, 10, summary.ReviewCount)
		assert.Equal(t, now, rv.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing product rolls back the insert", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews")).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		mock.ExpectQuery(regexp.QuoteMeta("review_count = review_count + 1")).
			WillReturnRows(sqlmock.NewRows([]string{"rating", "review_count"}))
		mock.ExpectRollback()

		_, err = repo.Add(ctx, rv)
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure wraps ErrFailedAddReview", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews")).
			WillReturnError(errors.New("constraint violation"))
		mock.ExpectRollback()

		_, err = repo.Add(ctx, rv)
		assert.ErrorIs(t, err, ErrFailedAddReview)
	})
}

func TestRepository_ListByProduct(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reviews")).
		WithArgs("prod-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "product_id", "user_id", "user_name", "rating", "comment", "is_verified", "created_at",
		}).
			AddRow("rev-2", "prod-1", 8, "b@example.com", 5, "", true, now).
			AddRow("rev-1", "prod-1", 7, "a@example.com", 3, "ok", false, now.Add(-time.Hour)))

	got, err := repo.ListByProduct(ctx, "prod-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "rev-2", got[0].ID)
	assert.True(t, got[0].IsVerified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_HasPurchased(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(7, "prod-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	got, err := repo.HasPurchased(ctx, 7, "prod-1")
	require.NoError(t, err)
	assert.True(t, got)
}
