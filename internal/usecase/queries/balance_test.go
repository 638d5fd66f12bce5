//go:build unit

package queries_test

import (
	"context"
	"testing"

	"punchcard/internal/infra"
	"punchcard/internal/usecase/queries"
	queriesmock "punchcard/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBalanceQueries_Get(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	businessID := uuid.New()

	newFixture := func(t *testing.T) (*queriesmock.MockBalanceViewRepo, *queriesmock.MockBusinessViewRepo, queries.BalanceQueries) {
		ctrl := gomock.NewController(t)
		balances := queriesmock.NewMockBalanceViewRepo(ctrl)
		businesses := queriesmock.NewMockBusinessViewRepo(ctrl)
		return balances, businesses, queries.NewBalanceQueries(balances, businesses)
	}

	t.Run("points business returns the running total", func(t *testing.T) {
		balances, businesses, q := newFixture(t)

		businesses.EXPECT().FindByID(gomock.Any(), businessID).
			Return(&queries.BusinessView{ID: businessID, LoyaltyType: "points"}, nil)
		balances.EXPECT().GetTotalPoints(gomock.Any(), userID, businessID).Return(int32(120), nil)

		view, err := q.Get(ctx, userID, businessID)
		require.NoError(t, err)

		want := &queries.BalanceView{
			BusinessID:  businessID,
			LoyaltyType: "points",
			TotalPoints: 120,
		}
		assert.Empty(t, cmp.Diff(want, view))
	})

	t.Run("stamps business returns one counter per coupon", func(t *testing.T) {
		balances, businesses, q := newFixture(t)
		stamps := []queries.StampBalanceView{
			{CouponID: uuid.New(), CouponName: "Free Coffee", Points: 3, PointsRequired: 10},
			{CouponID: uuid.New(), CouponName: "Free Bagel", Points: 7, PointsRequired: 8},
		}

		businesses.EXPECT().FindByID(gomock.Any(), businessID).
			Return(&queries.BusinessView{ID: businessID, LoyaltyType: "stamps"}, nil)
		balances.EXPECT().ListStamps(gomock.Any(), userID, businessID).Return(stamps, nil)

		view, err := q.Get(ctx, userID, businessID)
		require.NoError(t, err)

		want := &queries.BalanceView{
			BusinessID:  businessID,
			LoyaltyType: "stamps",
			Stamps:      stamps,
		}
		assert.Empty(t, cmp.Diff(want, view))
	})

	t.Run("unknown business", func(t *testing.T) {
		_, businesses, q := newFixture(t)

		businesses.EXPECT().FindByID(gomock.Any(), businessID).
			Return(nil, infra.WrapRepoErr("business not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := q.Get(ctx, userID, businessID)
		assert.ErrorIs(t, err, queries.ErrBusinessNotFound)
	})
}

func TestRedemptionQueries_GetOwn(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("owner of the redemption sees it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockRedemptionViewRepo(ctrl)
		view := &queries.RedemptionView{ID: uuid.New(), UserID: userID}

		repo.EXPECT().FindViewByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := queries.NewRedemptionQueries(repo).GetOwn(ctx, userID, view.ID)
		require.NoError(t, err)
		assert.Same(t, view, got)
	})

	t.Run("someone else's redemption reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockRedemptionViewRepo(ctrl)
		view := &queries.RedemptionView{ID: uuid.New(), UserID: uuid.New()}

		repo.EXPECT().FindViewByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := queries.NewRedemptionQueries(repo).GetOwn(ctx, userID, view.ID)
		assert.ErrorIs(t, err, queries.ErrRedemptionNotFound)
	})
}
