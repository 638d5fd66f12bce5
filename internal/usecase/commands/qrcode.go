package commands

import (
	"context"

	"punchcard/internal/domain/qrcode"
	"punchcard/internal/infra"
	"punchcard/internal/pkg/errs"
	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrCodeIssueFailed = errs.New("failed to issue code")

type QRCodeCommands interface {
	// IssueOrFetch returns the caller's active code, minting one only
	// when none exists. Two immediate calls return the identical code.
	IssueOrFetch(ctx context.Context, userID uuid.UUID) (*queries.QRCodeView, error)
}

type qrCodeUseCaseImpl struct {
	repo QRCodeRepository
}

func NewQRCodeUseCase(repo QRCodeRepository) QRCodeCommands {
	return &qrCodeUseCaseImpl{repo: repo}
}

func (u *qrCodeUseCaseImpl) IssueOrFetch(ctx context.Context, userID uuid.UUID) (*queries.QRCodeView, error) {
	existing, err := u.repo.FindActiveByUser(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrCodeIssueFailed)
	}

	code, err := qrcode.NewQRCode(userID)
	if err != nil {
		return nil, errs.Mark(err, ErrCodeIssueFailed)
	}

	created, err := u.repo.Create(ctx, code)
	if err != nil {
		// Lost the create race: the partial unique index admitted a
		// concurrent insert first, so that one is the active code.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return u.repo.FindActiveByUser(ctx, userID)
		}
		return nil, errs.Mark(err, ErrCodeIssueFailed)
	}

	return created, nil
}
