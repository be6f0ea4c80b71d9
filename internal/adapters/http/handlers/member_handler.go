package handlers

import (
	"errors"
	"strings"

	"pickmymenu-api/internal/config"
	"pickmymenu-api/internal/core/domain"
	"pickmymenu-api/internal/core/services"
	"pickmymenu-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MemberHandler handles member endpoints
type MemberHandler struct {
	memberService *services.MemberService
	cfg           *config.Config
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *services.MemberService, cfg *config.Config) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		cfg:           cfg,
	}
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
	Name        string `json:"name"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyPasswordRequest represents password re-check request body
type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

// UpdateProfileRequest represents profile update request body
type UpdateProfileRequest struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// tokenFromRequest reads the auth token from the token cookie, falling back
// to the Authorization header
func tokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies("token"); token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// authError maps token-guard failures to responses shared by every
// protected endpoint
func authError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingToken):
		return response.Unauthorized(c, "Token required")
	case errors.Is(err, domain.ErrInvalidToken):
		return response.Unauthorized(c, "Invalid or expired token")
	case errors.Is(err, domain.ErrMemberNotFound):
		return response.NotFound(c, "Member not found")
	default:
		return response.InternalServerError(c, "Something went wrong")
	}
}

// Register handles member registration
// @Summary Register new member
// @Description Register a new member with unique email and phone number
// @Tags Member
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /member/join [post]
func (h *MemberHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.PhoneNumber == "" {
		return response.BadRequest(c, "Phone number is required")
	}
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}
	if len(req.Password) < 8 {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}

	input := &services.RegisterInput{
		Email:       strings.TrimSpace(req.Email),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Password:    req.Password,
		Name:        strings.TrimSpace(req.Name),
	}

	msg, err := h.memberService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			return response.Conflict(c, "Email already registered")
		case errors.Is(err, domain.ErrDuplicatePhone):
			return response.Conflict(c, "Phone number already registered")
		default:
			return response.InternalServerError(c, "Failed to register member")
		}
	}

	return response.Created(c, msg, nil)
}

// Login handles member login
// @Summary Login member
// @Description Authenticate a member and set the token cookie
// @Tags Member
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /member/login [post]
func (h *MemberHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	result, err := h.memberService.Login(c.Context(), &services.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return response.InternalServerError(c, "Failed to login")
	}

	h.setTokenCookie(c, result.Token)

	return response.Success(c, "Login successful", fiber.Map{
		"token": result.Token,
		"name":  result.Name,
	})
}

// GetProfile returns the caller's profile
// @Summary Get my profile
// @Description Get the authenticated member's profile
// @Tags Member
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /member/mypage [get]
func (h *MemberHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.memberService.GetProfile(c.Context(), tokenFromRequest(c))
	if err != nil {
		return authError(c, err)
	}

	return response.Success(c, "Profile retrieved successfully", fiber.Map{
		"member": profile,
	})
}

// VerifyPassword re-checks the caller's password before sensitive edits
// @Summary Verify password
// @Description Check the supplied password against the stored one
// @Tags Member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /member/verify-password [post]
func (h *MemberHandler) VerifyPassword(c *fiber.Ctx) error {
	var req VerifyPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	ok, err := h.memberService.VerifyPassword(c.Context(), tokenFromRequest(c), req.Password)
	if err != nil {
		return authError(c, err)
	}

	return response.Success(c, "Password verification completed", fiber.Map{
		"verified": ok,
	})
}

// UpdateProfile updates the caller's phone number and optionally password
// @Summary Update my profile
// @Description Update phone number and optionally the password
// @Tags Member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /member/update [put]
func (h *MemberHandler) UpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.PhoneNumber == "" {
		return response.BadRequest(c, "Phone number is required")
	}

	input := &services.UpdateProfileInput{
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Password:    req.Password,
	}

	if err := h.memberService.UpdateProfile(c.Context(), tokenFromRequest(c), input); err != nil {
		if errors.Is(err, domain.ErrDuplicatePhone) {
			return response.Conflict(c, "Phone number already registered")
		}
		return authError(c, err)
	}

	return response.Success(c, "Profile updated successfully", fiber.Map{
		"updated": true,
	})
}

// CheckPhone checks phone number availability
// @Summary Check phone availability
// @Description Returns whether the phone number is free to register
// @Tags Member
// @Produce json
// @Param phone query string true "Phone number"
// @Success 200 {object} response.Response
// @Router /member/check-phone [get]
func (h *MemberHandler) CheckPhone(c *fiber.Ctx) error {
	phone := strings.TrimSpace(c.Query("phone"))
	if phone == "" {
		return response.BadRequest(c, "Phone number is required")
	}

	available, err := h.memberService.CheckPhoneAvailable(c.Context(), phone)
	if err != nil {
		return response.InternalServerError(c, "Failed to check phone number")
	}

	return response.Success(c, "Phone number check completed", fiber.Map{
		"available": available,
	})
}

// CheckEmail checks email availability. A taken email is a conflict, not a
// false flag, matching the public API contract.
// @Summary Check email availability
// @Description Fails with 409 when the email is taken
// @Tags Member
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /member/check-email [get]
func (h *MemberHandler) CheckEmail(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return response.BadRequest(c, "Email is required")
	}

	msg, err := h.memberService.CheckEmailAvailable(c.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return response.Conflict(c, "Email already registered")
		}
		return response.InternalServerError(c, "Failed to check email")
	}

	return response.Success(c, msg, nil)
}

// setTokenCookie sets the HTTP-only token cookie
// (token=<value>; HttpOnly; Path=/)
func (h *MemberHandler) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   h.cfg.JWT.TokenHours * 3600,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}
