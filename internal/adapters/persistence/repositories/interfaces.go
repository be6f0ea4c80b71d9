package repositories

import (
	"context"

	"pickmymenu-api/internal/adapters/persistence/models"
)

// MemberRepository defines member repository interface
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByEmail(ctx context.Context, email string) (*models.Member, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error)
}

// ResultMenuRepository defines result menu repository interface
type ResultMenuRepository interface {
	Create(ctx context.Context, menu *models.ResultMenu) error
	GetByID(ctx context.Context, id uint) (*models.ResultMenu, error)
	CountPendingByMember(ctx context.Context, memberID uint) (int64, error)
}

// ReviewRepository defines review repository interface
type ReviewRepository interface {
	// CreateForResultMenu inserts the review and flips the result menu's
	// reviewed flag in one transaction. Returns domain.ErrAlreadyReviewed
	// when the flag was already set, leaving nothing persisted.
	CreateForResultMenu(ctx context.Context, review *models.Review) error
	List(ctx context.Context, offset, limit int) ([]*models.Review, int64, error)
	ListByMember(ctx context.Context, offset, limit int, memberID uint) ([]*models.Review, int64, error)
}
