//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"punchcard/internal/domain/principal"
	"punchcard/internal/usecase/queries"
	queriesmock "punchcard/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestActionQueries_List(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	staffID := uuid.New()

	sampleRows := []*queries.ActionView{
		{ID: uuid.New(), BusinessID: businessID, StaffID: staffID, ActionType: "award", CreatedAt: time.Now()},
	}

	t.Run("owner sees every action of the business", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockActionViewRepo(ctrl)
		owner := principal.New(uuid.New(), principal.RoleOwner, &businessID)

		repo.EXPECT().ListByBusiness(gomock.Any(), businessID, int32(10)).Return(sampleRows, nil)

		rows, err := queries.NewActionQueries(repo).List(ctx, owner, 10)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("staff sees only their own actions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockActionViewRepo(ctrl)
		staff := principal.New(staffID, principal.RoleStaff, &businessID)

		repo.EXPECT().ListByStaff(gomock.Any(), businessID, staffID, int32(10)).Return(sampleRows, nil)

		_, err := queries.NewActionQueries(repo).List(ctx, staff, 10)
		require.NoError(t, err)
	})

	t.Run("zero limit falls back to the default page size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockActionViewRepo(ctrl)
		owner := principal.New(uuid.New(), principal.RoleOwner, &businessID)

		repo.EXPECT().ListByBusiness(gomock.Any(), businessID, int32(50)).Return(nil, nil)

		_, err := queries.NewActionQueries(repo).List(ctx, owner, 0)
		require.NoError(t, err)
	})

	t.Run("oversized limit is capped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockActionViewRepo(ctrl)
		owner := principal.New(uuid.New(), principal.RoleOwner, &businessID)

		repo.EXPECT().ListByBusiness(gomock.Any(), businessID, int32(200)).Return(nil, nil)

		_, err := queries.NewActionQueries(repo).List(ctx, owner, 5000)
		require.NoError(t, err)
	})

	t.Run("client principal is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockActionViewRepo(ctrl)
		client := principal.New(uuid.New(), principal.RoleClient, nil)

		_, err := queries.NewActionQueries(repo).List(ctx, client, 10)
		assert.ErrorIs(t, err, queries.ErrActionLogForbidden)
	})
}
