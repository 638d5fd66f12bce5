//go:build unit

package commands_test

import (
	"context"
	"testing"

	"punchcard/internal/domain/coupon"
	"punchcard/internal/domain/principal"
	"punchcard/internal/infra"
	"punchcard/internal/usecase/commands"
	"punchcard/internal/usecase/queries"
	"punchcard/tests/common/builder"
	commandsmock "punchcard/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCouponFixture(t *testing.T) (*commandsmock.MockCouponRepository, commands.CouponCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockCouponRepository(ctrl)
	return repo, commands.NewCouponUseCase(repo)
}

func TestCouponCommands_Create(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	owner := principal.New(uuid.New(), principal.RoleOwner, &businessID)

	t.Run("owner creates a coupon for their business", func(t *testing.T) {
		repo, uc := newCouponFixture(t)
		b := builder.NewCouponBuilder().
			With(func(b *builder.CouponBuilder) { b.BusinessID = businessID })

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *coupon.Coupon) (*queries.CouponView, error) {
				assert.Equal(t, businessID, c.BusinessID())
				assert.Equal(t, b.Name, c.Name().String())
				assert.True(t, c.Active())
				return b.BuildView(), nil
			})

		view, err := uc.Create(ctx, owner, commands.CreateCouponInput{
			Name:           b.Name,
			Description:    b.Description,
			PointsRequired: b.PointsRequired,
		})
		require.NoError(t, err)
		assert.Equal(t, b.Name, view.Name)
	})

	t.Run("staff cannot manage the coupon catalog", func(t *testing.T) {
		repo, uc := newCouponFixture(t)
		staff := principal.New(uuid.New(), principal.RoleStaff, &businessID)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Create(ctx, staff, commands.CreateCouponInput{
			Name:           "Free Coffee",
			Description:    "",
			PointsRequired: 10,
		})
		assert.ErrorIs(t, err, commands.ErrCouponForbidden)
	})

	t.Run("client cannot manage the coupon catalog", func(t *testing.T) {
		_, uc := newCouponFixture(t)
		client := principal.New(uuid.New(), principal.RoleClient, nil)

		_, err := uc.Create(ctx, client, commands.CreateCouponInput{
			Name:           "Free Coffee",
			PointsRequired: 10,
		})
		assert.ErrorIs(t, err, commands.ErrCouponForbidden)
	})

	t.Run("invalid definition is a validation error", func(t *testing.T) {
		_, uc := newCouponFixture(t)

		_, err := uc.Create(ctx, owner, commands.CreateCouponInput{
			Name:           "",
			PointsRequired: 10,
		})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestCouponCommands_Deactivate(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	owner := principal.New(uuid.New(), principal.RoleOwner, &businessID)
	couponID := uuid.New()

	t.Run("owner deactivates", func(t *testing.T) {
		repo, uc := newCouponFixture(t)
		repo.EXPECT().Deactivate(gomock.Any(), couponID, businessID).Return(nil)

		require.NoError(t, uc.Deactivate(ctx, owner, couponID))
	})

	t.Run("staff cannot deactivate", func(t *testing.T) {
		repo, uc := newCouponFixture(t)
		staff := principal.New(uuid.New(), principal.RoleStaff, &businessID)

		repo.EXPECT().Deactivate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := uc.Deactivate(ctx, staff, couponID)
		assert.ErrorIs(t, err, commands.ErrCouponForbidden)
	})

	t.Run("missing coupon reports not found", func(t *testing.T) {
		repo, uc := newCouponFixture(t)
		repo.EXPECT().Deactivate(gomock.Any(), couponID, businessID).
			Return(infra.WrapRepoErr("coupon not found", pgx.ErrNoRows, infra.KindNotFound))

		err := uc.Deactivate(ctx, owner, couponID)
		assert.ErrorIs(t, err, commands.ErrCouponNotFound)
	})
}
