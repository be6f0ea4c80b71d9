package models

import (
	"time"

	"gorm.io/gorm"
)

// Member represents members table
type Member struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PhoneNumber string    `gorm:"uniqueIndex;size:20;not null" json:"phone_number"`
	Name        string    `gorm:"size:50;not null" json:"name"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Member) TableName() string {
	return "members"
}

// MemberResponse DTO (never carries the password hash)
type MemberResponse struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}

func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:          m.ID,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		Name:        m.Name,
		CreatedAt:   m.CreatedAt,
	}
}

// ResultMenu represents result_menus table.
// One row per completed menu pick; reviewable exactly once.
type ResultMenu struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	MemberID       uint      `gorm:"index;not null" json:"member_id"`
	MenuName       string    `gorm:"size:100;not null" json:"menu_name"`
	RestaurantName string    `gorm:"size:100" json:"restaurant_name"`
	IsReviewed     bool      `gorm:"default:false;not null" json:"is_reviewed"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	Member         Member    `gorm:"foreignKey:MemberID" json:"-"`
}

func (ResultMenu) TableName() string {
	return "result_menus"
}

// Review represents reviews table
type Review struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ResultMenuID uint       `gorm:"index;not null" json:"result_menu_id"`
	Content      string     `gorm:"type:text;not null" json:"content"`
	ImageURL     string     `gorm:"size:255" json:"image_url"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	ResultMenu   ResultMenu `gorm:"foreignKey:ResultMenuID" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewResponse DTO
type ReviewResponse struct {
	ID             uint      `json:"id"`
	ResultMenuID   uint      `json:"result_menu_id"`
	MenuName       string    `json:"menu_name"`
	RestaurantName string    `json:"restaurant_name"`
	Content        string    `json:"content"`
	ImageURL       string    `json:"image_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (r *Review) ToResponse() *ReviewResponse {
	return &ReviewResponse{
		ID:             r.ID,
		ResultMenuID:   r.ResultMenuID,
		MenuName:       r.ResultMenu.MenuName,
		RestaurantName: r.ResultMenu.RestaurantName,
		Content:        r.Content,
		ImageURL:       r.ImageURL,
		CreatedAt:      r.CreatedAt,
	}
}

// AutoMigrate runs gorm auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Member{},
		&ResultMenu{},
		&Review{},
	)
}
