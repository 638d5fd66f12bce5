package jwt

import (
	"errors"
	"time"

	"punchcard/internal/domain/principal"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims mirror what the identity provider puts into its tokens.
type Claims struct {
	UserID     uuid.UUID  `json:"user_id"`
	Role       string     `json:"role"`
	BusinessID *uuid.UUID `json:"business_id,omitempty"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	issuer    string
}

func NewService(secretKey, issuer string) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}
}

// GenerateToken mints a token the same way the identity provider does.
// Production traffic never calls this; it exists for test fixtures and
// local development against a stub provider.
func (s *Service) GenerateToken(userID uuid.UUID, role principal.Role, businessID *uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:     userID,
		Role:       role.String(),
		BusinessID: businessID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.secretKey, nil
		},
		jwt.WithIssuer(s.issuer),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
