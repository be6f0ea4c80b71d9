package services

import (
	"context"
	"testing"

	"pickmymenu-api/internal/adapters/persistence/models"
	"pickmymenu-api/internal/config"
	"pickmymenu-api/internal/core/domain"
	"pickmymenu-api/internal/pkg/jwt"
	"pickmymenu-api/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockMemberRepository is a mock implementation of repositories.MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, member *models.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	args := m.Called(ctx, email)
	member, _ := args.Get(0).(*models.Member)
	return member, args.Error(1)
}

func (m *MockMemberRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*models.Member, error) {
	args := m.Called(ctx, phoneNumber)
	member, _ := args.Get(0).(*models.Member)
	return member, args.Error(1)
}

func (m *MockMemberRepository) Update(ctx context.Context, member *models.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberRepository) ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error) {
	args := m.Called(ctx, phoneNumber)
	return args.Bool(0), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: "test-secret", TokenHours: 1},
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := new(MockMemberRepository)
	repo.On("ExistsByEmail", mock.Anything, "taken@x.com").Return(true, nil)

	svc := NewMemberService(repo, testConfig())
	_, err := svc.Register(context.Background(), &RegisterInput{
		Email:       "taken@x.com",
		PhoneNumber: "555-0100",
		Password:    "secretpass",
		Name:        "Ann",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	repo := new(MockMemberRepository)
	repo.On("ExistsByEmail", mock.Anything, "a@x.com").Return(false, nil)
	repo.On("ExistsByPhoneNumber", mock.Anything, "555-0100").Return(true, nil)

	svc := NewMemberService(repo, testConfig())
	_, err := svc.Register(context.Background(), &RegisterInput{
		Email:       "a@x.com",
		PhoneNumber: "555-0100",
		Password:    "secretpass",
		Name:        "Ann",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicatePhone)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterThenLoginRoundTrip(t *testing.T) {
	repo := new(MockMemberRepository)
	repo.On("ExistsByEmail", mock.Anything, "a@x.com").Return(false, nil)
	repo.On("ExistsByPhoneNumber", mock.Anything, "555-0100").Return(false, nil)

	var stored *models.Member
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Member")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.Member)
			stored.ID = 1
		}).
		Return(nil)

	svc := NewMemberService(repo, testConfig())
	msg, err := svc.Register(context.Background(), &RegisterInput{
		Email:       "A@X.com ",
		PhoneNumber: "555-0100",
		Password:    "secretpass",
		Name:        "Ann",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, msg)

	// Email is normalized, password stored as a hash only
	require.NotNil(t, stored)
	assert.Equal(t, "a@x.com", stored.Email)
	assert.NotEqual(t, "secretpass", stored.Password)
	assert.True(t, password.Verify("secretpass", stored.Password))

	repo.On("GetByEmail", mock.Anything, "a@x.com").Return(stored, nil)

	result, err := svc.Login(context.Background(), &LoginInput{Email: "a@x.com", Password: "secretpass"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", result.Name)

	// Token identity claim resolves back to the registered member
	claims, err := jwt.ValidateAndExtract(result.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := password.Hash("rightpass")
	require.NoError(t, err)

	repo := new(MockMemberRepository)
	repo.On("GetByEmail", mock.Anything, "a@x.com").
		Return(&models.Member{ID: 1, Email: "a@x.com", Password: hash}, nil)

	svc := NewMemberService(repo, testConfig())
	_, err = svc.Login(context.Background(), &LoginInput{Email: "a@x.com", Password: "wrongpass"})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := new(MockMemberRepository)
	repo.On("GetByEmail", mock.Anything, "ghost@x.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewMemberService(repo, testConfig())
	_, err := svc.Login(context.Background(), &LoginInput{Email: "ghost@x.com", Password: "whatever"})

	// Unknown email and wrong password are indistinguishable
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	member := &models.Member{ID: 1, Email: "a@x.com", PhoneNumber: "555-0100", Name: "Ann", Password: "hash"}

	repo := new(MockMemberRepository)
	repo.On("GetByEmail", mock.Anything, "a@x.com").Return(member, nil)

	svc := NewMemberService(repo, testConfig())
	token, err := jwt.Generate("a@x.com", "Ann", "test-secret", 1)
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", profile.Email)
	assert.Equal(t, "Ann", profile.Name)
	assert.Equal(t, "555-0100", profile.PhoneNumber)
}

func TestGetProfileMissingToken(t *testing.T) {
	svc := NewMemberService(new(MockMemberRepository), testConfig())

	_, err := svc.GetProfile(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrMissingToken)
}

func TestGetProfileInvalidToken(t *testing.T) {
	svc := NewMemberService(new(MockMemberRepository), testConfig())

	_, err := svc.GetProfile(context.Background(), "garbage")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestGetProfileUnknownMember(t *testing.T) {
	repo := new(MockMemberRepository)
	repo.On("GetByEmail", mock.Anything, "gone@x.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewMemberService(repo, testConfig())
	token, err := jwt.Generate("gone@x.com", "Gone", "test-secret", 1)
	require.NoError(t, err)

	_, err = svc.GetProfile(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := password.Hash("rightpass")
	require.NoError(t, err)

	repo := new(MockMemberRepository)
	repo.On("GetByEmail", mock.Anything, "a@x.com").
		Return(&models.Member{ID: 1, Email: "a@x.com", Password: hash}, nil)

	svc := NewMemberService(repo, testConfig())
	token, err := jwt.Generate("a@x.com", "Ann", "test-secret", 1)
	require.NoError(t, err)

	ok, err := svc.VerifyPassword(context.Background(), token, "rightpass")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.VerifyPassword(context.Background(), token, "wrongpass")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateProfileKeepsPasswordWhenEmpty(t *testing.T) {
	member := &models.Member{ID: 1, Email: "a@x.com", PhoneNumber: "555-0100", Name: "Ann", Password: "old-hash"}

	repo := new(MockMemberRepository)
	repo.On("GetByEmail", mock.Anything, "a@x.com").Return(member, nil)
	repo.On("ExistsByPhoneNumber", mock.Anything, "555-0199").Return(false, nil)

	var updated *models.Member
	repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Member")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*models.Member)
		}).
		Return(nil)

	svc := NewMemberService(repo, testConfig())
	token, err := jwt.Generate("a@x.com", "Ann", "test-secret", 1)
	require.NoError(t, err)

	err = svc.UpdateProfile(context.Background(), token, &UpdateProfileInput{PhoneNumber: "555-0199"})
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, "555-0199", updated.PhoneNumber)
	assert.Equal(t, "old-hash", updated.Password)
	assert.Equal(t, "Ann", updated.Name)
}

func TestUpdateProfileRehashesNewPassword(t *testing.T) {
	member := &models.Member{ID: 1, Email: "a@x.com", PhoneNumber: "555-0100", Name: "Ann", Password: "old-hash"}

	repo := new(MockMemberRepository)
	repo.On("GetByEmail", mock.Anything, "a@x.com").Return(member, nil)

	var updated *models.Member
	repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Member")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*models.Member)
		}).
		Return(nil)

	svc := NewMemberService(repo, testConfig())
	token, err := jwt.Generate("a@x.com", "Ann", "test-secret", 1)
	require.NoError(t, err)

	// Same phone number, so no duplicate lookup happens
	err = svc.UpdateProfile(context.Background(), token, &UpdateProfileInput{
		PhoneNumber: "555-0100",
		Password:    "brand-new-pass",
	})
	require.NoError(t, err)

	repo.AssertNotCalled(t, "ExistsByPhoneNumber", mock.Anything, mock.Anything)
	require.NotNil(t, updated)
	assert.NotEqual(t, "brand-new-pass", updated.Password)
	assert.True(t, password.Verify("brand-new-pass", updated.Password))
}

func TestUpdateProfileDuplicatePhone(t *testing.T) {
	member := &models.Member{ID: 1, Email: "a@x.com", PhoneNumber: "555-0100", Name: "Ann", Password: "hash"}

	repo := new(MockMemberRepository)
	repo.On("GetByEmail", mock.Anything, "a@x.com").Return(member, nil)
	repo.On("ExistsByPhoneNumber", mock.Anything, "555-0200").Return(true, nil)

	svc := NewMemberService(repo, testConfig())
	token, err := jwt.Generate("a@x.com", "Ann", "test-secret", 1)
	require.NoError(t, err)

	err = svc.UpdateProfile(context.Background(), token, &UpdateProfileInput{PhoneNumber: "555-0200"})
	assert.ErrorIs(t, err, domain.ErrDuplicatePhone)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCheckPhoneAvailable(t *testing.T) {
	repo := new(MockMemberRepository)
	repo.On("ExistsByPhoneNumber", mock.Anything, "555-0100").Return(true, nil)
	repo.On("ExistsByPhoneNumber", mock.Anything, "555-0999").Return(false, nil)

	svc := NewMemberService(repo, testConfig())

	available, err := svc.CheckPhoneAvailable(context.Background(), "555-0100")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = svc.CheckPhoneAvailable(context.Background(), "555-0999")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestCheckEmailAvailableIsIdempotent(t *testing.T) {
	repo := new(MockMemberRepository)
	repo.On("ExistsByEmail", mock.Anything, "free@x.com").Return(false, nil)

	svc := NewMemberService(repo, testConfig())

	first, err := svc.CheckEmailAvailable(context.Background(), " Free@X.com")
	require.NoError(t, err)
	second, err := svc.CheckEmailAvailable(context.Background(), " Free@X.com")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCheckEmailTaken(t *testing.T) {
	repo := new(MockMemberRepository)
	repo.On("ExistsByEmail", mock.Anything, "taken@x.com").Return(true, nil)

	svc := NewMemberService(repo, testConfig())

	_, err := svc.CheckEmailAvailable(context.Background(), "taken@x.com")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}
