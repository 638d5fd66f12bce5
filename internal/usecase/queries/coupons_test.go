//go:build unit

package queries_test

import (
	"context"
	"testing"

	"punchcard/internal/infra"
	"punchcard/internal/usecase/queries"
	queriesmock "punchcard/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCouponQueries(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()

	newFixture := func(t *testing.T) (*queriesmock.MockCouponViewRepo, queries.CouponQueries) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockCouponViewRepo(ctrl)
		return repo, queries.NewCouponQueries(repo)
	}

	t.Run("list hides inactive coupons unless asked", func(t *testing.T) {
		repo, q := newFixture(t)
		repo.EXPECT().ListByBusiness(gomock.Any(), businessID, true).
			Return([]*queries.CouponView{}, nil)

		_, err := q.ListByBusiness(ctx, businessID, false)
		require.NoError(t, err)
	})

	t.Run("get by id returns the view", func(t *testing.T) {
		repo, q := newFixture(t)
		want := &queries.CouponView{ID: uuid.New(), BusinessID: businessID, Name: "Free Coffee"}
		repo.EXPECT().FindByID(gomock.Any(), want.ID).Return(want, nil)

		view, err := q.GetByID(ctx, want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, view)
	})

	t.Run("get by id maps a miss to not found", func(t *testing.T) {
		repo, q := newFixture(t)
		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("coupon not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := q.GetByID(ctx, id)
		assert.ErrorIs(t, err, queries.ErrCouponNotFound)
	})
}
