package repositories

import (
	"context"

	"pickmymenu-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// resultMenuRepository implements ResultMenuRepository interface
type resultMenuRepository struct {
	db *gorm.DB
}

// NewResultMenuRepository creates a new result menu repository
func NewResultMenuRepository(db *gorm.DB) ResultMenuRepository {
	return &resultMenuRepository{db: db}
}

// Create creates a new result menu
func (r *resultMenuRepository) Create(ctx context.Context, menu *models.ResultMenu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

// GetByID gets a result menu by ID
func (r *resultMenuRepository) GetByID(ctx context.Context, id uint) (*models.ResultMenu, error) {
	var menu models.ResultMenu
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// CountPendingByMember counts result menus of a member without a review yet
func (r *resultMenuRepository) CountPendingByMember(ctx context.Context, memberID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ResultMenu{}).
		Where("member_id = ? AND is_reviewed = ?", memberID, false).
		Count(&count).Error
	return count, err
}
