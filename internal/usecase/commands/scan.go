package commands

import (
	"context"
	"log/slog"
	"time"

	"punchcard/internal/domain/action"
	"punchcard/internal/domain/loyalty"
	"punchcard/internal/domain/principal"
	"punchcard/internal/domain/qrcode"
	"punchcard/internal/domain/redemption"
	"punchcard/internal/infra"
	"punchcard/internal/pkg/clock"
	"punchcard/internal/pkg/errs"
	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrCodeAlreadyUsed         = errs.New("invalid or already used code")
	ErrUnrecognizedCode        = errs.New("unrecognized code")
	ErrAmountRequired          = errs.New("this is a customer profile code; an award amount is required")
	ErrExpectedProfileCode     = errs.New("this is a coupon verification code, not a customer profile code")
	ErrInvalidAmount           = errs.New("award amount must be a positive integer")
	ErrCouponTargetRequired    = errs.New("this business stamps per coupon; a coupon id is required")
	ErrCouponTargetInvalid     = errs.New("coupon does not belong to this business or is inactive")
	ErrScanForbidden           = errs.New("not authorized to scan for this business")
	ErrRedemptionNotFound      = errs.New("redemption not found")
	ErrAlreadyVerified         = errs.New("coupon already verified")
	ErrVerifyWindowElapsed     = errs.New("verification window elapsed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ScanInput is one scanned payload plus the staff-side intent: a
// present Amount means an award was intended, absence means a
// verification was intended.
type ScanInput struct {
	Payload  string
	Amount   *int32
	CouponID *uuid.UUID
}

type AwardResult struct {
	RecipientID uuid.UUID
	Awarded     int32
	NewBalance  int32
}

type VerificationResult struct {
	RedemptionID uuid.UUID
	RecipientID  uuid.UUID
	Coupon       *queries.CouponView
	VerifiedAt   time.Time
}

type ScanResult struct {
	Award        *AwardResult
	Verification *VerificationResult
}

type ScanCommands interface {
	Scan(ctx context.Context, actor principal.Principal, in ScanInput) (*ScanResult, error)
}

type scanUseCaseImpl struct {
	qrRepo         QRCodeRepository
	balanceRepo    BalanceRepository
	couponRepo     CouponRepository
	redemptionRepo RedemptionRepository
	actionRepo     ActionRepository
	businessRepo   BusinessRepository
	db             DB
	clock          clock.Clock
	verifyWindow   time.Duration
}

func NewScanUseCase(
	qrRepo QRCodeRepository,
	balanceRepo BalanceRepository,
	couponRepo CouponRepository,
	redemptionRepo RedemptionRepository,
	actionRepo ActionRepository,
	businessRepo BusinessRepository,
	db DB,
	clock clock.Clock,
	verifyWindow time.Duration,
) ScanCommands {
	return &scanUseCaseImpl{
		qrRepo:         qrRepo,
		balanceRepo:    balanceRepo,
		couponRepo:     couponRepo,
		redemptionRepo: redemptionRepo,
		actionRepo:     actionRepo,
		businessRepo:   businessRepo,
		db:             db,
		clock:          clock,
		verifyWindow:   verifyWindow,
	}
}

// Scan resolves the payload against both code domains (an explicit
// tagged lookup, never string-shape sniffing) and dispatches to the
// award or verification flow. A payload of the wrong kind for the
// intended action gets a descriptive mismatch error.
func (u *scanUseCaseImpl) Scan(ctx context.Context, actor principal.Principal, in ScanInput) (*ScanResult, error) {
	businessID, err := actor.RequireBusiness()
	if err != nil {
		return nil, errs.Mark(err, ErrScanForbidden)
	}

	target, err := u.resolvePayload(ctx, in.Payload)
	if err != nil {
		return nil, err
	}

	switch target.kind {
	case payloadProfileCode:
		if in.Amount == nil {
			return nil, ErrAmountRequired
		}
		award, err := u.awardPoints(ctx, actor, businessID, in)
		if err != nil {
			return nil, err
		}
		return &ScanResult{Award: award}, nil

	case payloadCouponCode:
		if in.Amount != nil {
			return nil, ErrExpectedProfileCode
		}
		verification, err := u.verifyCoupon(ctx, actor, businessID, target.redemption)
		if err != nil {
			return nil, err
		}
		return &ScanResult{Verification: verification}, nil

	default:
		return nil, ErrUnrecognizedCode
	}
}

type payloadKind int

const (
	payloadUnrecognized payloadKind = iota
	payloadProfileCode
	payloadCouponCode
)

type resolvedPayload struct {
	kind       payloadKind
	redemption *redemption.Redemption
}

// resolvePayload decides which code domain a scanned payload belongs
// to. Only a definitive miss demotes a lookup to "unrecognized"; a
// failing store must surface as a failure, not as a bad code.
func (u *scanUseCaseImpl) resolvePayload(ctx context.Context, payload string) (resolvedPayload, error) {
	// Profile codes are always minted as 32-char hex payloads, so
	// anything shaped differently cannot be one and skips the lookup.
	if _, err := qrcode.ParsePayload(payload); err == nil {
		_, err := u.qrRepo.FindByPayload(ctx, payload)
		switch {
		case err == nil:
			return resolvedPayload{kind: payloadProfileCode}, nil
		case !infra.IsKind(err, infra.KindNotFound):
			return resolvedPayload{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	redemptionID, err := uuid.Parse(payload)
	if err != nil {
		return resolvedPayload{kind: payloadUnrecognized}, nil
	}
	r, err := u.redemptionRepo.FindByID(ctx, redemptionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return resolvedPayload{kind: payloadUnrecognized}, nil
		}
		return resolvedPayload{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return resolvedPayload{kind: payloadCouponCode, redemption: r}, nil
}

// awardPoints is the core ledger mutation: claim the code, then apply
// the delta to the balance shape the business's reward mode selects.
// Both statements commit together; the audit append stays outside the
// transaction because the balance mutation is the operation of record.
func (u *scanUseCaseImpl) awardPoints(ctx context.Context, actor principal.Principal, businessID uuid.UUID, in ScanInput) (*AwardResult, error) {
	amount := *in.Amount
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	business, err := u.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	mode := loyalty.Type(business.LoyaltyType)
	var target *queries.CouponView
	if mode == loyalty.TypeStamps {
		if in.CouponID == nil {
			return nil, ErrCouponTargetRequired
		}
		target, err = u.couponRepo.FindByID(ctx, *in.CouponID)
		if err != nil || target.BusinessID != businessID || !target.IsActive {
			return nil, ErrCouponTargetInvalid
		}
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	recipientID, err := u.qrRepo.Claim(ctx, tx, in.Payload)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCodeAlreadyUsed
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var newBalance int32
	if mode == loyalty.TypeStamps {
		newBalance, err = u.balanceRepo.AddStamps(ctx, tx, recipientID, businessID, target.ID, amount)
	} else {
		newBalance, err = u.balanceRepo.AddPoints(ctx, tx, recipientID, businessID, amount)
	}
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.appendAction(ctx, action.NewAward(businessID, actor.UserID(), recipientID, amount))

	return &AwardResult{
		RecipientID: recipientID,
		Awarded:     amount,
		NewBalance:  newBalance,
	}, nil
}

// verifyCoupon finalizes a customer's claim. The false→true transition
// is a single conditional update; the preceding read only produces the
// precise rejection reason.
func (u *scanUseCaseImpl) verifyCoupon(ctx context.Context, actor principal.Principal, businessID uuid.UUID, r *redemption.Redemption) (*VerificationResult, error) {
	if r.BusinessID() != businessID {
		return nil, ErrScanForbidden
	}

	now := u.clock.Now()
	if err := r.ValidateVerification(now, u.verifyWindow); err != nil {
		switch err {
		case redemption.ErrAlreadyVerified:
			return nil, ErrAlreadyVerified
		case redemption.ErrWindowElapsed:
			return nil, ErrVerifyWindowElapsed
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if err := u.redemptionRepo.ClaimVerification(ctx, u.db, r.ID(), now); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrAlreadyVerified
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	couponView, err := u.couponRepo.FindByID(ctx, r.CouponID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.appendAction(ctx, action.NewVerification(businessID, actor.UserID(), r.UserID(), couponView.Name))

	return &VerificationResult{
		RedemptionID: r.ID(),
		RecipientID:  r.UserID(),
		Coupon:       couponView,
		VerifiedAt:   now,
	}, nil
}

// Audit append is best-effort: a lost log entry is tolerable, a rolled
// back award is not.
func (u *scanUseCaseImpl) appendAction(ctx context.Context, a *action.StaffAction) {
	if err := u.actionRepo.Append(ctx, a); err != nil {
		slog.Error("failed to append staff action",
			"action_type", a.ActionType().String(),
			"staff_id", a.StaffID().String(),
			"error", err.Error())
	}
}
