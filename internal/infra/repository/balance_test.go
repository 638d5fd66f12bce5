//go:build unit

package repository_test

import (
	"context"
	"testing"

	"punchcard/internal/infra"
	"punchcard/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceRepository_AddPoints(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	businessID := uuid.New()

	mock := newPoolMock(t)
	mock.ExpectQuery(`INSERT INTO point_balances`).
		WithArgs(userID, businessID, int32(5)).
		WillReturnRows(pgxmock.NewRows([]string{"total_points"}).AddRow(int32(15)))

	repo := repository.NewBalanceRepository(mock)
	total, err := repo.AddPoints(ctx, mock, userID, businessID, 5)
	require.NoError(t, err)
	assert.Equal(t, int32(15), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepository_AddStamps(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	businessID := uuid.New()
	couponID := uuid.New()

	mock := newPoolMock(t)
	mock.ExpectQuery(`INSERT INTO stamp_balances`).
		WithArgs(userID, businessID, couponID, int32(1)).
		WillReturnRows(pgxmock.NewRows([]string{"points"}).AddRow(int32(4)))

	repo := repository.NewBalanceRepository(mock)
	points, err := repo.AddStamps(ctx, mock, userID, businessID, couponID, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(4), points)
}

func TestBalanceRepository_DeductPoints(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	businessID := uuid.New()

	t.Run("success: sufficient balance", func(t *testing.T) {
		mock := newPoolMock(t)
		mock.ExpectExec(`UPDATE point_balances`).
			WithArgs(userID, businessID, int32(10)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := repository.NewBalanceRepository(mock)
		assert.NoError(t, repo.DeductPoints(ctx, mock, userID, businessID, 10))
	})

	t.Run("conflict: insufficient balance affects zero rows", func(t *testing.T) {
		mock := newPoolMock(t)
		mock.ExpectExec(`UPDATE point_balances`).
			WithArgs(userID, businessID, int32(10)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := repository.NewBalanceRepository(mock)
		err := repo.DeductPoints(ctx, mock, userID, businessID, 10)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})
}

func TestBalanceRepository_DeductStamps(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	businessID := uuid.New()
	couponID := uuid.New()

	t.Run("conflict: insufficient stamps affects zero rows", func(t *testing.T) {
		mock := newPoolMock(t)
		mock.ExpectExec(`UPDATE stamp_balances`).
			WithArgs(userID, businessID, couponID, int32(10)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := repository.NewBalanceRepository(mock)
		err := repo.DeductStamps(ctx, mock, userID, businessID, couponID, 10)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})
}

func TestBalanceRepository_GetTotalPoints(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	businessID := uuid.New()

	t.Run("existing balance row", func(t *testing.T) {
		mock := newPoolMock(t)
		mock.ExpectQuery(`SELECT total_points FROM point_balances`).
			WithArgs(userID, businessID).
			WillReturnRows(pgxmock.NewRows([]string{"total_points"}).AddRow(int32(42)))

		repo := repository.NewBalanceRepository(mock)
		total, err := repo.GetTotalPoints(ctx, userID, businessID)
		require.NoError(t, err)
		assert.Equal(t, int32(42), total)
	})

	t.Run("missing row means zero, not an error", func(t *testing.T) {
		mock := newPoolMock(t)
		mock.ExpectQuery(`SELECT total_points FROM point_balances`).
			WithArgs(userID, businessID).
			WillReturnRows(pgxmock.NewRows([]string{"total_points"}))

		repo := repository.NewBalanceRepository(mock)
		total, err := repo.GetTotalPoints(ctx, userID, businessID)
		require.NoError(t, err)
		assert.Equal(t, int32(0), total)
	})
}
