//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"punchcard/internal/domain/principal"
	"punchcard/internal/infra"
	"punchcard/internal/pkg/clock"
	"punchcard/internal/usecase/commands"
	"punchcard/internal/usecase/queries"
	"punchcard/tests/common/builder"
	commandsmock "punchcard/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const verifyWindow = 5 * time.Minute

type scanFixture struct {
	qrRepo         *commandsmock.MockQRCodeRepository
	balanceRepo    *commandsmock.MockBalanceRepository
	couponRepo     *commandsmock.MockCouponRepository
	redemptionRepo *commandsmock.MockRedemptionRepository
	actionRepo     *commandsmock.MockActionRepository
	businessRepo   *commandsmock.MockBusinessRepository
	db             pgxmock.PgxPoolIface
	clock          *clock.MockClock
	uc             commands.ScanCommands
}

func newScanFixture(t *testing.T, now time.Time) *scanFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(db.Close)

	f := &scanFixture{
		qrRepo:         commandsmock.NewMockQRCodeRepository(ctrl),
		balanceRepo:    commandsmock.NewMockBalanceRepository(ctrl),
		couponRepo:     commandsmock.NewMockCouponRepository(ctrl),
		redemptionRepo: commandsmock.NewMockRedemptionRepository(ctrl),
		actionRepo:     commandsmock.NewMockActionRepository(ctrl),
		businessRepo:   commandsmock.NewMockBusinessRepository(ctrl),
		db:             db,
		clock:          clock.NewMockClock(now),
	}
	f.uc = commands.NewScanUseCase(
		f.qrRepo, f.balanceRepo, f.couponRepo, f.redemptionRepo,
		f.actionRepo, f.businessRepo, f.db, f.clock, verifyWindow,
	)
	return f
}

func (f *scanFixture) expectProfilePayload(payload string, owner uuid.UUID) {
	f.qrRepo.EXPECT().FindByPayload(gomock.Any(), payload).
		Return(&queries.QRCodeView{ID: uuid.New(), UserID: owner, Data: payload}, nil)
}

func (f *scanFixture) expectNoProfilePayload(payload string) {
	f.qrRepo.EXPECT().FindByPayload(gomock.Any(), payload).
		Return(nil, infra.WrapRepoErr("code not found", pgx.ErrNoRows, infra.KindNotFound))
}

func int32Ptr(v int32) *int32 { return &v }

func TestScan_Award(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	businessID := uuid.New()
	staffID := uuid.New()
	recipientID := uuid.New()
	staff := principal.New(staffID, principal.RoleStaff, &businessID)
	payload := "0123456789abcdef0123456789abcdef"

	t.Run("success: points business", func(t *testing.T) {
		f := newScanFixture(t, now)
		f.expectProfilePayload(payload, recipientID)
		f.businessRepo.EXPECT().FindByID(gomock.Any(), businessID).
			Return(&queries.BusinessView{ID: businessID, LoyaltyType: "points"}, nil)

		f.db.ExpectBegin()
		f.qrRepo.EXPECT().Claim(gomock.Any(), gomock.Any(), payload).Return(recipientID, nil)
		f.balanceRepo.EXPECT().AddPoints(gomock.Any(), gomock.Any(), recipientID, businessID, int32(5)).
			Return(int32(15), nil)
		f.db.ExpectCommit()
		f.db.ExpectRollback()
		f.actionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.uc.Scan(ctx, staff, commands.ScanInput{Payload: payload, Amount: int32Ptr(5)})
		require.NoError(t, err)
		require.NotNil(t, result.Award)
		assert.Nil(t, result.Verification)
		assert.Equal(t, recipientID, result.Award.RecipientID)
		assert.Equal(t, int32(5), result.Award.Awarded)
		assert.Equal(t, int32(15), result.Award.NewBalance)
	})

	t.Run("success: stamps business increments the targeted coupon", func(t *testing.T) {
		f := newScanFixture(t, now)
		target := builder.NewCouponBuilder().
			With(func(b *builder.CouponBuilder) { b.BusinessID = businessID }).
			BuildView()

		f.expectProfilePayload(payload, recipientID)
		f.businessRepo.EXPECT().FindByID(gomock.Any(), businessID).
			Return(&queries.BusinessView{ID: businessID, LoyaltyType: "stamps"}, nil)
		f.couponRepo.EXPECT().FindByID(gomock.Any(), target.ID).Return(target, nil)

		f.db.ExpectBegin()
		f.qrRepo.EXPECT().Claim(gomock.Any(), gomock.Any(), payload).Return(recipientID, nil)
		f.balanceRepo.EXPECT().AddStamps(gomock.Any(), gomock.Any(), recipientID, businessID, target.ID, int32(1)).
			Return(int32(3), nil)
		f.db.ExpectCommit()
		f.db.ExpectRollback()
		f.actionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.uc.Scan(ctx, staff, commands.ScanInput{
			Payload:  payload,
			Amount:   int32Ptr(1),
			CouponID: &target.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, int32(3), result.Award.NewBalance)
	})

	t.Run("already used code rolls back and mutates nothing", func(t *testing.T) {
		f := newScanFixture(t, now)
		f.expectProfilePayload(payload, recipientID)
		f.businessRepo.EXPECT().FindByID(gomock.Any(), businessID).
			Return(&queries.BusinessView{ID: businessID, LoyaltyType: "points"}, nil)

		f.db.ExpectBegin()
		f.qrRepo.EXPECT().Claim(gomock.Any(), gomock.Any(), payload).
			Return(uuid.Nil, infra.WrapRepoErr("code already used or invalid", nil, infra.KindConflict))
		f.db.ExpectRollback()

		_, err := f.uc.Scan(ctx, staff, commands.ScanInput{Payload: payload, Amount: int32Ptr(5)})
		assert.ErrorIs(t, err, commands.ErrCodeAlreadyUsed)
		assert.NoError(t, f.db.ExpectationsWereMet())
	})

	t.Run("profile code without amount", func(t *testing.T) {
		f := newScanFixture(t, now)
		f.expectProfilePayload(payload, recipientID)

		_, err := f.uc.Scan(ctx, staff, commands.ScanInput{Payload: payload})
		assert.ErrorIs(t, err, commands.ErrAmountRequired)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		f := newScanFixture(t, now)
		f.expectProfilePayload(payload, recipientID)

		_, err := f.uc.Scan(ctx, staff, commands.ScanInput{Payload: payload, Amount: int32Ptr(0)})
		assert.ErrorIs(t, err, commands.ErrInvalidAmount)
	})

	t.Run("stamps business requires a coupon target", func(t *testing.T) {
		f := newScanFixture(t, now)
		f.expectProfilePayload(payload, recipientID)
		f.businessRepo.EXPECT().FindByID(gomock.Any(), businessID).
			Return(&queries.BusinessView{ID: businessID, LoyaltyType: "stamps"}, nil)

		_, err := f.uc.Scan(ctx, staff, commands.ScanInput{Payload: payload, Amount: int32Ptr(1)})
		assert.ErrorIs(t, err, commands.ErrCouponTargetRequired)
	})

	t.Run("coupon target of another business is rejected", func(t *testing.T) {
		f := newScanFixture(t, now)
		foreign := builder.NewCouponBuilder().BuildView() // different business id

		f.expectProfilePayload(payload, recipientID)
		f.businessRepo.EXPECT().FindByID(gomock.Any(), businessID).
			Return(&queries.BusinessView{ID: businessID, LoyaltyType: "stamps"}, nil)
		f.couponRepo.EXPECT().FindByID(gomock.Any(), foreign.ID).Return(foreign, nil)

		_, err := f.uc.Scan(ctx, staff, commands.ScanInput{
			Payload:  payload,
			Amount:   int32Ptr(1),
			CouponID: &foreign.ID,
		})
		assert.ErrorIs(t, err, commands.ErrCouponTargetInvalid)
	})

	t.Run("client principal cannot scan", func(t *testing.T) {
		f := newScanFixture(t, now)
		client := principal.New(uuid.New(), principal.RoleClient, nil)

		_, err := f.uc.Scan(ctx, client, commands.ScanInput{Payload: payload, Amount: int32Ptr(5)})
		assert.ErrorIs(t, err, commands.ErrScanForbidden)
	})
}

func TestScan_Verify(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	businessID := uuid.New()
	staffID := uuid.New()
	staff := principal.New(staffID, principal.RoleStaff, &businessID)

	freshRedemption := func() *builder.RedemptionBuilder {
		return builder.NewRedemptionBuilder().With(func(b *builder.RedemptionBuilder) {
			b.BusinessID = businessID
			b.RedeemedAt = now.Add(-time.Minute)
		})
	}

	t.Run("success: redemption code verifies the coupon", func(t *testing.T) {
		f := newScanFixture(t, now)
		rb := freshRedemption()
		r := rb.BuildDomain()
		couponView := builder.NewCouponBuilder().
			With(func(b *builder.CouponBuilder) { b.ID = rb.CouponID; b.BusinessID = businessID }).
			BuildView()

		f.redemptionRepo.EXPECT().FindByID(gomock.Any(), rb.ID).Return(r, nil)
		f.redemptionRepo.EXPECT().ClaimVerification(gomock.Any(), gomock.Any(), rb.ID, now).Return(nil)
		f.couponRepo.EXPECT().FindByID(gomock.Any(), rb.CouponID).Return(couponView, nil)
		f.actionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.uc.Scan(ctx, staff, commands.ScanInput{Payload: rb.ID.String()})
		require.NoError(t, err)
		require.NotNil(t, result.Verification)
		assert.Nil(t, result.Award)
		assert.Equal(t, rb.ID, result.Verification.RedemptionID)
		assert.Equal(t, rb.UserID, result.Verification.RecipientID)
		assert.Equal(t, now, result.Verification.VerifiedAt)
	})

	t.Run("redemption code with amount is a kind mismatch", func(t *testing.T) {
		f := newScanFixture(t, now)
		rb := freshRedemption()

		f.redemptionRepo.EXPECT().FindByID(gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil)

		_, err := f.uc.Scan(ctx, staff, commands.ScanInput{Payload: rb.ID.String(), Amount: int32Ptr(5)})
		assert.ErrorIs(t, err, commands.ErrExpectedProfileCode)
	})

	t.Run("another business's redemption is forbidden", func(t *testing.T) {
		f := newScanFixture(t, now)
		rb := builder.NewRedemptionBuilder() // foreign business

		f.redemptionRepo.EXPECT().FindByID(gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil)

		_, err := f.uc.Scan(ctx, staff, commands.ScanInput{Payload: rb.ID.String()})
		assert.ErrorIs(t, err, commands.ErrScanForbidden)
	})

	t.Run("second verification reports already verified", func(t *testing.T) {
		f := newScanFixture(t, now)
		verifiedAt := now.Add(-time.Minute)
		rb := freshRedemption().With(func(b *builder.RedemptionBuilder) {
			b.Verified = true
			b.VerifiedAt = &verifiedAt
		})

		f.redemptionRepo.EXPECT().FindByID(gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil)

		_, err := f.uc.Scan(ctx, staff, commands.ScanInput{Payload: rb.ID.String()})
		assert.ErrorIs(t, err, commands.ErrAlreadyVerified)
	})

	t.Run("concurrent claim loser reports already verified", func(t *testing.T) {
		f := newScanFixture(t, now)
		rb := freshRedemption()

		f.redemptionRepo.EXPECT().FindByID(gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil)
		f.redemptionRepo.EXPECT().ClaimVerification(gomock.Any(), gomock.Any(), rb.ID, now).
			Return(infra.WrapRepoErr("already verified", nil, infra.KindConflict))

		_, err := f.uc.Scan(ctx, staff, commands.ScanInput{Payload: rb.ID.String()})
		assert.ErrorIs(t, err, commands.ErrAlreadyVerified)
	})

	t.Run("verification window elapsed", func(t *testing.T) {
		f := newScanFixture(t, now)
		rb := freshRedemption().With(func(b *builder.RedemptionBuilder) {
			b.RedeemedAt = now.Add(-verifyWindow - time.Second)
		})

		f.redemptionRepo.EXPECT().FindByID(gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil)

		_, err := f.uc.Scan(ctx, staff, commands.ScanInput{Payload: rb.ID.String()})
		assert.ErrorIs(t, err, commands.ErrVerifyWindowElapsed)
	})

	t.Run("unrecognized payload", func(t *testing.T) {
		f := newScanFixture(t, now)

		_, err := f.uc.Scan(ctx, staff, commands.ScanInput{Payload: "not-a-code", Amount: int32Ptr(5)})
		assert.ErrorIs(t, err, commands.ErrUnrecognizedCode)
	})
}

func TestScan_ResolvePayload(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	businessID := uuid.New()
	staff := principal.New(uuid.New(), principal.RoleStaff, &businessID)
	payload := "0123456789abcdef0123456789abcdef"

	t.Run("unknown hex payload falls through to the redemption lookup", func(t *testing.T) {
		f := newScanFixture(t, now)
		f.expectNoProfilePayload(payload)
		f.redemptionRepo.EXPECT().FindByID(gomock.Any(), uuid.MustParse(payload)).
			Return(nil, infra.WrapRepoErr("redemption not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := f.uc.Scan(ctx, staff, commands.ScanInput{Payload: payload, Amount: int32Ptr(5)})
		assert.ErrorIs(t, err, commands.ErrUnrecognizedCode)
	})

	t.Run("code lookup failure is a failure, not a bad code", func(t *testing.T) {
		f := newScanFixture(t, now)
		f.qrRepo.EXPECT().FindByPayload(gomock.Any(), payload).
			Return(nil, infra.WrapRepoErr("connection reset", assert.AnError, infra.KindDBFailure))

		_, err := f.uc.Scan(ctx, staff, commands.ScanInput{Payload: payload, Amount: int32Ptr(5)})
		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
		assert.NotErrorIs(t, err, commands.ErrUnrecognizedCode)
	})

	t.Run("redemption lookup failure is a failure, not a bad code", func(t *testing.T) {
		f := newScanFixture(t, now)
		redemptionID := uuid.New()

		// no qr lookup for a dashed payload; only the redemption side is consulted
		f.redemptionRepo.EXPECT().FindByID(gomock.Any(), redemptionID).
			Return(nil, infra.WrapRepoErr("connection reset", assert.AnError, infra.KindDBFailure))

		_, err := f.uc.Scan(ctx, staff, commands.ScanInput{Payload: redemptionID.String()})
		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
		assert.NotErrorIs(t, err, commands.ErrUnrecognizedCode)
	})
}
