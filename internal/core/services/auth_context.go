package services

import (
	"context"
	"errors"

	"pickmymenu-api/internal/adapters/persistence/models"
	"pickmymenu-api/internal/adapters/persistence/repositories"
	"pickmymenu-api/internal/core/domain"
	"pickmymenu-api/internal/pkg/jwt"

	"gorm.io/gorm"
)

// resolveCaller is the token-guard sequence shared by every protected
// operation: reject a missing token, verify it, resolve the member behind
// the email claim.
func resolveCaller(ctx context.Context, token, secret string, memberRepo repositories.MemberRepository) (*models.Member, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}

	claims, err := jwt.ValidateAndExtract(token, secret)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	member, err := memberRepo.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}

	return member, nil
}
