package queries

import (
	"context"

	"punchcard/internal/domain/loyalty"
	"punchcard/internal/infra"
	"punchcard/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBusinessNotFound = errs.New("business not found")

type BalanceViewRepo interface {
	// GetTotalPoints returns 0 for a user with no balance row yet.
	GetTotalPoints(ctx context.Context, userID, businessID uuid.UUID) (int32, error)
	ListStamps(ctx context.Context, userID, businessID uuid.UUID) ([]StampBalanceView, error)
}

type BusinessViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BusinessView, error)
}

type BalanceQueries interface {
	Get(ctx context.Context, userID, businessID uuid.UUID) (*BalanceView, error)
}

type balanceQueriesImpl struct {
	balances   BalanceViewRepo
	businesses BusinessViewRepo
}

func NewBalanceQueries(balances BalanceViewRepo, businesses BusinessViewRepo) BalanceQueries {
	return &balanceQueriesImpl{
		balances:   balances,
		businesses: businesses,
	}
}

// Get assembles the customer progress view in the shape the business's
// reward mode dictates: one running total, or one counter per coupon.
func (q *balanceQueriesImpl) Get(ctx context.Context, userID, businessID uuid.UUID) (*BalanceView, error) {
	business, err := q.businesses.FindByID(ctx, businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}

	view := &BalanceView{
		BusinessID:  businessID,
		LoyaltyType: business.LoyaltyType,
	}

	switch loyalty.Type(business.LoyaltyType) {
	case loyalty.TypeStamps:
		stamps, err := q.balances.ListStamps(ctx, userID, businessID)
		if err != nil {
			return nil, err
		}
		view.Stamps = stamps
	default:
		total, err := q.balances.GetTotalPoints(ctx, userID, businessID)
		if err != nil {
			return nil, err
		}
		view.TotalPoints = total
	}

	return view, nil
}
