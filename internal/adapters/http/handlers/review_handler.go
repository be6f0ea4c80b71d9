package handlers

import (
	"errors"
	"strconv"
	"strings"

	"pickmymenu-api/internal/core/domain"
	"pickmymenu-api/internal/core/services"
	"pickmymenu-api/internal/pkg/pagination"
	"pickmymenu-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles review endpoints
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Create handles review creation with an optional image.
// Multipart form: result_menu_id, content, review_image (file, optional).
// The image is uploaded before the review is persisted; an upload failure
// aborts the whole request so a review never silently loses its image.
// @Summary Create review
// @Description Create a review for a visited result menu, with optional image
// @Tags Review
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /review [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	menuID, err := strconv.ParseUint(c.FormValue("result_menu_id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid result menu id")
	}

	input := &services.CreateInput{
		ResultMenuID: uint(menuID),
		Content:      strings.TrimSpace(c.FormValue("content")),
	}

	// Missing file is fine; the upload step no-ops on nil
	file, _ := c.FormFile("review_image")
	if file != nil {
		if err := h.reviewService.UploadImage(file, input); err != nil {
			return response.InternalServerError(c, "Failed to upload review image")
		}
	}

	review, err := h.reviewService.Create(c.Context(), input, tokenFromRequest(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyContent):
			return response.BadRequest(c, "Review content is required")
		case errors.Is(err, domain.ErrResultMenuNotFound):
			return response.NotFound(c, "Result menu not found")
		case errors.Is(err, domain.ErrAlreadyReviewed):
			return response.Conflict(c, "This result menu is already reviewed")
		case errors.Is(err, domain.ErrNotOwner):
			return response.Forbidden(c, "Only the member who visited can review")
		default:
			return authError(c, err)
		}
	}

	return response.Created(c, "Review created successfully", fiber.Map{
		"review": review,
	})
}

// List returns a page of all reviews
// @Summary List reviews
// @Description Paginated list of all reviews
// @Tags Review
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Router /review [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	reviews, total, err := h.reviewService.List(c.Context(), params)
	if err != nil {
		return response.InternalServerError(c, "Failed to list reviews")
	}

	return c.JSON(pagination.NewResponse(reviews, params, total))
}

// ListMine returns a page of the caller's reviews
// @Summary List my reviews
// @Description Paginated list of the authenticated member's reviews
// @Tags Review
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Failure 401 {object} response.Response
// @Router /review/my [get]
func (h *ReviewHandler) ListMine(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	reviews, total, err := h.reviewService.ListMine(c.Context(), params, tokenFromRequest(c))
	if err != nil {
		return authError(c, err)
	}

	return c.JSON(pagination.NewResponse(reviews, params, total))
}

// CountPending returns how many of the caller's visits still lack a review
// @Summary Count pending reviews
// @Description Number of result menus awaiting a review from the caller
// @Tags Review
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /review/pending-count [get]
func (h *ReviewHandler) CountPending(c *fiber.Ctx) error {
	count, err := h.reviewService.CountPending(c.Context(), tokenFromRequest(c))
	if err != nil {
		return authError(c, err)
	}

	return response.Success(c, "Pending review count retrieved", fiber.Map{
		"count": count,
	})
}
