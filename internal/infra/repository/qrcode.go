package repository

import (
	"context"
	"time"

	"punchcard/internal/domain/qrcode"
	"punchcard/internal/infra"
	"punchcard/internal/infra/db"
	"punchcard/internal/pkg/pgconv"
	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type QRCodeRepository struct {
	db db.DBTX
}

func NewQRCodeRepository(db db.DBTX) *QRCodeRepository {
	return &QRCodeRepository{db: db}
}

const qrCodeColumns = `id, user_id, code, used, used_at, created_at`

func (r *QRCodeRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*queries.QRCodeView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+qrCodeColumns+` FROM qr_codes
		 WHERE user_id = $1 AND NOT used
		 ORDER BY created_at DESC LIMIT 1`,
		userID)

	view, err := scanQRCodeRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active code", err)
	}
	return view, nil
}

func (r *QRCodeRepository) FindByPayload(ctx context.Context, payload string) (*queries.QRCodeView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+qrCodeColumns+` FROM qr_codes WHERE code = $1`,
		payload)

	view, err := scanQRCodeRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find code by payload", err)
	}
	return view, nil
}

func (r *QRCodeRepository) Create(ctx context.Context, code *qrcode.QRCode) (*queries.QRCodeView, error) {
	var createdAt pgtype.Timestamptz
	err := r.db.QueryRow(ctx,
		`INSERT INTO qr_codes (id, user_id, code) VALUES ($1, $2, $3)
		 RETURNING created_at`,
		code.ID(), code.UserID(), code.Payload().String()).Scan(&createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create code", err)
	}

	return &queries.QRCodeView{
		ID:        code.ID(),
		UserID:    code.UserID(),
		Data:      code.Payload().String(),
		Used:      false,
		CreatedAt: pgconv.TimeFromPgtype(createdAt),
	}, nil
}

// Claim consumes the code. The WHERE used = false filter makes the
// flip race-free: of N concurrent scans exactly one sees a row.
func (r *QRCodeRepository) Claim(ctx context.Context, tx db.DBTX, payload string) (uuid.UUID, error) {
	var userID uuid.UUID
	err := tx.QueryRow(ctx,
		`UPDATE qr_codes SET used = true, used_at = now()
		 WHERE code = $1 AND used = false
		 RETURNING user_id`,
		payload).Scan(&userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("code already used or invalid", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to claim code", err)
	}
	return userID, nil
}

// DeleteConsumedBefore is janitor-only; unused codes are never touched.
func (r *QRCodeRepository) DeleteConsumedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM qr_codes WHERE used AND used_at < $1`,
		cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete consumed codes", err)
	}
	return tag.RowsAffected(), nil
}

func scanQRCodeRow(row interface{ Scan(dest ...any) error }) (*queries.QRCodeView, error) {
	var (
		view   queries.QRCodeView
		usedAt pgtype.Timestamptz
		made   pgtype.Timestamptz
	)
	if err := row.Scan(&view.ID, &view.UserID, &view.Data, &view.Used, &usedAt, &made); err != nil {
		return nil, err
	}
	view.UsedAt = pgconv.TimePtrFromPgtype(usedAt)
	view.CreatedAt = pgconv.TimeFromPgtype(made)
	return &view, nil
}
