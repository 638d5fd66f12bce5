package repository

import (
	"context"

	"punchcard/internal/infra"
	"punchcard/internal/infra/db"
	"punchcard/internal/pkg/pgconv"
	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
)

// BusinessRepository is read-only: business profiles are managed by an
// external service, this one only needs the reward mode.
type BusinessRepository struct {
	db db.DBTX
}

func NewBusinessRepository(db db.DBTX) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.BusinessView, error) {
	var view queries.BusinessView
	err := r.db.QueryRow(ctx,
		`SELECT id, name, loyalty_type FROM businesses WHERE id = $1`,
		id).Scan(&view.ID, &view.Name, &view.LoyaltyType)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("business not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find business by ID", err)
	}
	return &view, nil
}
