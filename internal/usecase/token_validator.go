package usecase

import (
	"errors"

	"punchcard/internal/domain/principal"
	"punchcard/internal/pkg/jwt"
)

var ErrTokenMissing = errors.New("access token missing")

// TokenValidator turns a bearer credential into a Principal for the
// auth middleware. Claims are trusted as-is: the identity provider
// token is the single source of truth for role and business scope.
type TokenValidator interface {
	ValidateToken(tokenString string) (principal.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (principal.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return principal.Principal{}, err
	}

	role, err := principal.NewRole(claims.Role)
	if err != nil {
		return principal.Principal{}, err
	}

	return principal.New(claims.UserID, role, claims.BusinessID), nil
}
