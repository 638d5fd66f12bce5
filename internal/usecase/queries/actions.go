package queries

import (
	"context"

	"punchcard/internal/domain/principal"
	"punchcard/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrActionLogForbidden = errs.New("action log access forbidden")

const (
	defaultActionLimit = 50
	maxActionLimit     = 200
)

// ActionViewRepo is the read side of the append-only audit log.
type ActionViewRepo interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID, limit int32) ([]*ActionView, error)
	ListByStaff(ctx context.Context, businessID, staffID uuid.UUID, limit int32) ([]*ActionView, error)
}

type ActionQueries interface {
	List(ctx context.Context, actor principal.Principal, limit int32) ([]*ActionView, error)
}

type actionQueriesImpl struct {
	repo ActionViewRepo
}

func NewActionQueries(repo ActionViewRepo) ActionQueries {
	return &actionQueriesImpl{repo: repo}
}

// List returns newest-first audit rows. Owners see every action of
// their business; staff only the ones they performed themselves.
func (q *actionQueriesImpl) List(ctx context.Context, actor principal.Principal, limit int32) ([]*ActionView, error) {
	businessID, err := actor.RequireBusiness()
	if err != nil {
		return nil, errs.Mark(err, ErrActionLogForbidden)
	}

	if limit <= 0 {
		limit = defaultActionLimit
	}
	if limit > maxActionLimit {
		limit = maxActionLimit
	}

	if actor.CanSeeAllActions() {
		return q.repo.ListByBusiness(ctx, businessID, limit)
	}
	return q.repo.ListByStaff(ctx, businessID, actor.UserID(), limit)
}
