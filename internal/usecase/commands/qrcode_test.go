//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"punchcard/internal/domain/qrcode"
	"punchcard/internal/infra"
	"punchcard/internal/usecase/commands"
	"punchcard/internal/usecase/queries"
	commandsmock "punchcard/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIssueOrFetch(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	notFound := func() error {
		return infra.WrapRepoErr("active code not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	t.Run("returns the existing active code unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockQRCodeRepository(ctrl)
		existing := &queries.QRCodeView{ID: uuid.New(), UserID: userID, Data: "0123456789abcdef0123456789abcdef"}
		repo.EXPECT().FindActiveByUser(gomock.Any(), userID).Return(existing, nil)

		got, err := commands.NewQRCodeUseCase(repo).IssueOrFetch(ctx, userID)
		require.NoError(t, err)
		assert.Same(t, existing, got)
	})

	t.Run("mints a fresh code when none is active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockQRCodeRepository(ctrl)
		repo.EXPECT().FindActiveByUser(gomock.Any(), userID).Return(nil, notFound())
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, code *qrcode.QRCode) (*queries.QRCodeView, error) {
				assert.Len(t, code.Payload().String(), 32)
				return &queries.QRCodeView{ID: code.ID(), UserID: code.UserID(), Data: code.Payload().String()}, nil
			})

		got, err := commands.NewQRCodeUseCase(repo).IssueOrFetch(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, userID, got.UserID)
	})

	t.Run("lost create race falls back to the winner's code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockQRCodeRepository(ctrl)
		winner := &queries.QRCodeView{ID: uuid.New(), UserID: userID, Data: "feedfacefeedfacefeedfacefeedface"}

		gomock.InOrder(
			repo.EXPECT().FindActiveByUser(gomock.Any(), userID).Return(nil, notFound()),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).
				Return(nil, infra.WrapRepoErr("duplicate active code", errors.New("23505"), infra.KindDuplicateKey)),
			repo.EXPECT().FindActiveByUser(gomock.Any(), userID).Return(winner, nil),
		)

		got, err := commands.NewQRCodeUseCase(repo).IssueOrFetch(ctx, userID)
		require.NoError(t, err)
		assert.Same(t, winner, got)
	})

	t.Run("unexpected lookup failure surfaces as an issue failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockQRCodeRepository(ctrl)
		repo.EXPECT().FindActiveByUser(gomock.Any(), userID).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("connection reset"), infra.KindDBFailure))

		_, err := commands.NewQRCodeUseCase(repo).IssueOrFetch(ctx, userID)
		assert.ErrorIs(t, err, commands.ErrCodeIssueFailed)
	})
}
