package usecase

import (
	"loyalty-ledger/internal/domain/principal"
	"loyalty-ledger/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
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

	id, err := uuid.Parse(claims.Subject)
	if err != nil || id == uuid.Nil {
		return principal.Principal{}, jwt.ErrInvalidToken
	}

	role, err := principal.NewRole(claims.UserMetadata.UserType)
	if err != nil {
		return principal.Principal{}, err
	}

	return principal.Principal{ID: id, Role: role}, nil
}
