//go:build unit

package qrcode_test

import (
	"testing"

	"punchcard/internal/domain/qrcode"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayload(t *testing.T) {
	t.Run("generates 32 lowercase hex characters", func(t *testing.T) {
		p, err := qrcode.NewPayload()
		require.NoError(t, err)
		assert.Len(t, p.String(), 32)

		// Round-trips through the parser.
		parsed, err := qrcode.ParsePayload(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	})

	t.Run("successive payloads differ", func(t *testing.T) {
		a, err := qrcode.NewPayload()
		require.NoError(t, err)
		b, err := qrcode.NewPayload()
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}

func TestParsePayload(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "valid payload", input: "0123456789abcdef0123456789abcdef", valid: true},
		{name: "empty string", input: ""},
		{name: "too short", input: "0123456789abcdef"},
		{name: "too long", input: "0123456789abcdef0123456789abcdef00"},
		{name: "uppercase hex rejected", input: "0123456789ABCDEF0123456789ABCDEF"},
		{name: "non-hex characters", input: "0123456789abcdef0123456789abcdeg"},
		{name: "uuid shape is not a payload", input: uuid.New().String()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := qrcode.ParsePayload(tc.input)
			if tc.valid {
				require.NoError(t, err)
				assert.Equal(t, tc.input, p.String())
			} else {
				assert.ErrorIs(t, err, qrcode.ErrInvalidPayload)
			}
		})
	}
}

func TestNewQRCode(t *testing.T) {
	userID := uuid.New()
	code, err := qrcode.NewQRCode(userID)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, code.ID())
	assert.Equal(t, userID, code.UserID())
	assert.False(t, code.Used())
	assert.Nil(t, code.UsedAt())
	assert.Len(t, code.Payload().String(), 32)
}
