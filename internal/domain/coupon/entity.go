package coupon

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInactive = errors.New("coupon is not active")

// Coupon is a business-defined reward. Immutable once issued except for
// the active flag; deactivation is the only delete the system knows.
type Coupon struct {
	id             uuid.UUID
	businessID     uuid.UUID
	name           Name
	description    string
	pointsRequired Threshold
	imageURL       *string
	active         bool
}

func NewCoupon(businessID uuid.UUID, name string, description string, pointsRequired int32, imageURL *string) (*Coupon, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	threshold, err := NewThreshold(pointsRequired)
	if err != nil {
		return nil, err
	}

	description = strings.TrimSpace(description)
	if len(description) > MaxDescriptionLength {
		return nil, ErrDescriptionLong
	}

	return &Coupon{
		id:             uuid.New(),
		businessID:     businessID,
		name:           n,
		description:    description,
		pointsRequired: threshold,
		imageURL:       imageURL,
		active:         true,
	}, nil
}

// Restore rebuilds a coupon from persisted state. Values were
// validated when the coupon was created, so raw fields are accepted.
func Restore(id, businessID uuid.UUID, name, description string, pointsRequired int32, imageURL *string, active bool) *Coupon {
	return &Coupon{
		id:             id,
		businessID:     businessID,
		name:           Name(name),
		description:    description,
		pointsRequired: Threshold(pointsRequired),
		imageURL:       imageURL,
		active:         active,
	}
}

// ValidateRedemption gates the customer-side claim. Balance
// sufficiency is not checked here: the decrement is conditional at
// the store and a pre-read would only race it.
func (c *Coupon) ValidateRedemption() error {
	if !c.active {
		return ErrInactive
	}
	return nil
}

func (c *Coupon) ID() uuid.UUID             { return c.id }
func (c *Coupon) BusinessID() uuid.UUID     { return c.businessID }
func (c *Coupon) Name() Name                { return c.name }
func (c *Coupon) Description() string       { return c.description }
func (c *Coupon) PointsRequired() Threshold { return c.pointsRequired }
func (c *Coupon) ImageURL() *string         { return c.imageURL }
func (c *Coupon) Active() bool              { return c.active }
