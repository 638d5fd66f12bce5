package response

import (
	"time"

	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
)

type QRCodeResponse struct {
	ID        uuid.UUID `json:"id"`
	Data      string    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

func FromQRCodeView(v *queries.QRCodeView) *QRCodeResponse {
	return &QRCodeResponse{
		ID:        v.ID,
		Data:      v.Data,
		CreatedAt: v.CreatedAt,
	}
}
