package qrcode

import (
	"time"

	"github.com/google/uuid"
)

// QRCode is a single-use award token. It is minted unused, consumed
// exactly once by a successful award, and never mutated otherwise.
type QRCode struct {
	id        uuid.UUID
	userID    uuid.UUID
	payload   Payload
	used      bool
	usedAt    *time.Time
	createdAt time.Time
}

func NewQRCode(userID uuid.UUID) (*QRCode, error) {
	payload, err := NewPayload()
	if err != nil {
		return nil, err
	}
	return &QRCode{
		id:      uuid.New(),
		userID:  userID,
		payload: payload,
	}, nil
}

func Restore(id, userID uuid.UUID, payload Payload, used bool, usedAt *time.Time, createdAt time.Time) *QRCode {
	return &QRCode{
		id:        id,
		userID:    userID,
		payload:   payload,
		used:      used,
		usedAt:    usedAt,
		createdAt: createdAt,
	}
}

func (q *QRCode) ID() uuid.UUID        { return q.id }
func (q *QRCode) UserID() uuid.UUID    { return q.userID }
func (q *QRCode) Payload() Payload     { return q.payload }
func (q *QRCode) Used() bool           { return q.used }
func (q *QRCode) UsedAt() *time.Time   { return q.usedAt }
func (q *QRCode) CreatedAt() time.Time { return q.createdAt }
