package repositories

import (
	"context"

	"pickmymenu-api/internal/adapters/persistence/models"
	"pickmymenu-api/internal/core/domain"

	"gorm.io/gorm"
)

// reviewRepository implements ReviewRepository interface
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// CreateForResultMenu inserts the review and marks the result menu reviewed
// in a single transaction. The flag flip is a conditional update on
// is_reviewed = false, so a concurrent creation against the same result menu
// loses with domain.ErrAlreadyReviewed and the insert rolls back.
func (r *reviewRepository) CreateForResultMenu(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ResultMenu{}).
			Where("id = ? AND is_reviewed = ?", review.ResultMenuID, false).
			Update("is_reviewed", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlreadyReviewed
		}

		return tx.Create(review).Error
	})
}

// List lists reviews with pagination
func (r *reviewRepository) List(ctx context.Context, offset, limit int) ([]*models.Review, int64, error) {
	var reviews []*models.Review
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Review{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("ResultMenu").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// ListByMember lists reviews whose result menu belongs to the member
func (r *reviewRepository) ListByMember(ctx context.Context, offset, limit int, memberID uint) ([]*models.Review, int64, error) {
	var reviews []*models.Review
	var total int64

	base := r.db.WithContext(ctx).Model(&models.Review{}).
		Joins("JOIN result_menus ON result_menus.id = reviews.result_menu_id").
		Where("result_menus.member_id = ?", memberID).
		Session(&gorm.Session{})

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Preload("ResultMenu").
		Order("reviews.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}
