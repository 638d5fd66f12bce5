//go:build unit

package redemption_test

import (
	"testing"
	"time"

	"punchcard/internal/domain/redemption"
	"punchcard/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestRedemption_ValidateVerification(t *testing.T) {
	window := 5 * time.Minute
	redeemedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("inside window", func(t *testing.T) {
		r := builder.NewRedemptionBuilder().
			With(func(b *builder.RedemptionBuilder) { b.RedeemedAt = redeemedAt }).
			BuildDomain()

		assert.NoError(t, r.ValidateVerification(redeemedAt.Add(window), window))
		assert.NoError(t, r.ValidateVerification(redeemedAt, window))
	})

	t.Run("window elapsed", func(t *testing.T) {
		r := builder.NewRedemptionBuilder().
			With(func(b *builder.RedemptionBuilder) { b.RedeemedAt = redeemedAt }).
			BuildDomain()

		err := r.ValidateVerification(redeemedAt.Add(window+time.Second), window)
		assert.ErrorIs(t, err, redemption.ErrWindowElapsed)
	})

	t.Run("zero window disables the check", func(t *testing.T) {
		r := builder.NewRedemptionBuilder().
			With(func(b *builder.RedemptionBuilder) { b.RedeemedAt = redeemedAt }).
			BuildDomain()

		assert.NoError(t, r.ValidateVerification(redeemedAt.Add(100*time.Hour), 0))
	})

	t.Run("already verified wins over window", func(t *testing.T) {
		verifiedAt := redeemedAt.Add(time.Minute)
		r := builder.NewRedemptionBuilder().
			With(func(b *builder.RedemptionBuilder) {
				b.RedeemedAt = redeemedAt
				b.Verified = true
				b.VerifiedAt = &verifiedAt
			}).
			BuildDomain()

		err := r.ValidateVerification(redeemedAt.Add(window+time.Hour), window)
		assert.ErrorIs(t, err, redemption.ErrAlreadyVerified)
	})
}
