package config

import (
	"log"

	"pickmymenu-api/internal/adapters/persistence/models"
	"pickmymenu-api/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders. Dev mode only.
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedDemoMember(); err != nil {
		log.Printf("⚠️ Demo member seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedDemoMember seeds a demo member with a couple of unreviewed
// menu picks so the review flow can be exercised locally.
func (s *Seeder) seedDemoMember() error {
	var count int64
	s.db.Model(&models.Member{}).Where("email = ?", "demo@pickmymenu.com").Count(&count)
	if count > 0 {
		return nil // already seeded
	}

	hashedPassword, err := password.Hash("demo12345")
	if err != nil {
		return err
	}

	member := &models.Member{
		Email:       "demo@pickmymenu.com",
		PhoneNumber: "010-0000-0000",
		Name:        "Demo",
		Password:    hashedPassword,
	}
	if err := s.db.Create(member).Error; err != nil {
		return err
	}

	menus := []models.ResultMenu{
		{MemberID: member.ID, MenuName: "Bibimbap", RestaurantName: "Seoul Kitchen"},
		{MemberID: member.ID, MenuName: "Margherita", RestaurantName: "Forno Nero"},
	}
	if err := s.db.Create(&menus).Error; err != nil {
		return err
	}

	log.Printf("🌱 Seeded demo member %s with %d menu picks", member.Email, len(menus))
	return nil
}
