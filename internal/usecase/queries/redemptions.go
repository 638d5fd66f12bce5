package queries

import (
	"context"

	"punchcard/internal/infra"
	"punchcard/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRedemptionNotFound = errs.New("redemption not found")

type RedemptionViewRepo interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*RedemptionView, error)
}

type RedemptionQueries interface {
	// GetOwn hides other users' redemptions behind not-found rather
	// than leaking their existence.
	GetOwn(ctx context.Context, userID, id uuid.UUID) (*RedemptionView, error)
}

type redemptionQueriesImpl struct {
	repo RedemptionViewRepo
}

func NewRedemptionQueries(repo RedemptionViewRepo) RedemptionQueries {
	return &redemptionQueriesImpl{repo: repo}
}

func (q *redemptionQueriesImpl) GetOwn(ctx context.Context, userID, id uuid.UUID) (*RedemptionView, error) {
	view, err := q.repo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRedemptionNotFound
		}
		return nil, err
	}
	if view.UserID != userID {
		return nil, ErrRedemptionNotFound
	}
	return view, nil
}
