package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"pickmymenu-api/internal/adapters/persistence/models"
	"pickmymenu-api/internal/adapters/persistence/repositories"
	"pickmymenu-api/internal/config"
	"pickmymenu-api/internal/core/domain"
	"pickmymenu-api/internal/pkg/jwt"
	"pickmymenu-api/internal/pkg/password"

	"gorm.io/gorm"
)

// MemberService handles member registration, login and profile logic
type MemberService struct {
	memberRepo repositories.MemberRepository
	cfg        *config.Config
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo repositories.MemberRepository, cfg *config.Config) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
		cfg:        cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required,min=8"`
	Name        string `json:"name" validate:"required"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult represents a successful login
type LoginResult struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// UpdateProfileInput represents profile update input.
// An empty Password keeps the current one.
type UpdateProfileInput struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password"`
}

// Register registers a new member
func (s *MemberService) Register(ctx context.Context, input *RegisterInput) (string, error) {
	email := normalizeEmail(input.Email)

	exists, err := s.memberRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrDuplicateEmail
	}

	exists, err = s.memberRepo.ExistsByPhoneNumber(ctx, input.PhoneNumber)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrDuplicatePhone
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return "", err
	}

	member := &models.Member{
		Email:       email,
		PhoneNumber: input.PhoneNumber,
		Name:        input.Name,
		Password:    hashedPassword,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return "", err
	}

	log.Printf("✅ Member registered: %s", member.Email)
	return "registration successful", nil
}

// Login authenticates a member and issues a token.
// Unknown email and wrong password collapse into the same error so the
// response does not leak which field was wrong.
func (s *MemberService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	member, err := s.memberRepo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, member.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(member.Email, member.Name, s.cfg.JWT.Secret, s.cfg.JWT.TokenHours)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Member logged in: %s", member.Email)
	return &LoginResult{Token: token, Name: member.Name}, nil
}

// GetProfile returns the caller's profile without the password hash
func (s *MemberService) GetProfile(ctx context.Context, token string) (*models.MemberResponse, error) {
	member, err := resolveCaller(ctx, token, s.cfg.JWT.Secret, s.memberRepo)
	if err != nil {
		return nil, err
	}
	return member.ToResponse(), nil
}

// VerifyPassword checks the supplied password against the caller's stored
// hash. Used as a re-authentication gate before profile edits.
func (s *MemberService) VerifyPassword(ctx context.Context, token, plain string) (bool, error) {
	member, err := resolveCaller(ctx, token, s.cfg.JWT.Secret, s.memberRepo)
	if err != nil {
		return false, err
	}
	return password.Verify(plain, member.Password), nil
}

// UpdateProfile updates the caller's phone number and, when supplied,
// password. The display name is never touched here.
func (s *MemberService) UpdateProfile(ctx context.Context, token string, input *UpdateProfileInput) error {
	member, err := resolveCaller(ctx, token, s.cfg.JWT.Secret, s.memberRepo)
	if err != nil {
		return err
	}

	// Duplicate check only when the phone number actually changes
	if member.PhoneNumber != input.PhoneNumber {
		exists, err := s.memberRepo.ExistsByPhoneNumber(ctx, input.PhoneNumber)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicatePhone
		}
		member.PhoneNumber = input.PhoneNumber
	}

	if input.Password != "" {
		hashedPassword, err := password.Hash(input.Password)
		if err != nil {
			return err
		}
		member.Password = hashedPassword
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return err
	}

	log.Printf("✅ Member profile updated: %s", member.Email)
	return nil
}

// CheckPhoneAvailable returns true when no member owns the phone number
func (s *MemberService) CheckPhoneAvailable(ctx context.Context, phoneNumber string) (bool, error) {
	exists, err := s.memberRepo.ExistsByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// CheckEmailAvailable reports an already-taken email through the error
// channel, unlike CheckPhoneAvailable. The asymmetry mirrors the public API
// and stays until the API surface itself is redesigned.
func (s *MemberService) CheckEmailAvailable(ctx context.Context, email string) (string, error) {
	exists, err := s.memberRepo.ExistsByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrDuplicateEmail
	}
	return "email is available", nil
}

// normalizeEmail trims and lowercases an email before any lookup or insert
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
