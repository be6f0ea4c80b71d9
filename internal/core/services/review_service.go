package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"pickmymenu-api/internal/adapters/persistence/models"
	"pickmymenu-api/internal/adapters/persistence/repositories"
	"pickmymenu-api/internal/config"
	"pickmymenu-api/internal/core/domain"
	"pickmymenu-api/internal/pkg/ftpclient"
	"pickmymenu-api/internal/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService handles review creation, listing and image upload
type ReviewService struct {
	reviewRepo     repositories.ReviewRepository
	resultMenuRepo repositories.ResultMenuRepository
	memberRepo     repositories.MemberRepository
	uploader       ftpclient.Uploader
	cfg            *config.Config
}

// NewReviewService creates a new review service
func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	resultMenuRepo repositories.ResultMenuRepository,
	memberRepo repositories.MemberRepository,
	uploader ftpclient.Uploader,
	cfg *config.Config,
) *ReviewService {
	return &ReviewService{
		reviewRepo:     reviewRepo,
		resultMenuRepo: resultMenuRepo,
		memberRepo:     memberRepo,
		uploader:       uploader,
		cfg:            cfg,
	}
}

// CreateInput represents review creation input. ImageURL is filled by
// UploadImage before Create runs.
type CreateInput struct {
	ResultMenuID uint   `json:"result_menu_id" validate:"required"`
	Content      string `json:"content" validate:"required"`
	ImageURL     string `json:"-"`
}

// Create validates and persists a review for a result menu. The insert and
// the reviewed-flag flip happen in one transaction inside the repository, so
// concurrent attempts against the same result menu yield exactly one review.
func (s *ReviewService) Create(ctx context.Context, input *CreateInput, token string) (*models.ReviewResponse, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, domain.ErrEmptyContent
	}

	member, err := resolveCaller(ctx, token, s.cfg.JWT.Secret, s.memberRepo)
	if err != nil {
		return nil, err
	}

	menu, err := s.resultMenuRepo.GetByID(ctx, input.ResultMenuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrResultMenuNotFound
		}
		return nil, err
	}

	if menu.IsReviewed {
		return nil, domain.ErrAlreadyReviewed
	}

	if menu.MemberID != member.ID {
		return nil, domain.ErrNotOwner
	}

	review := &models.Review{
		ResultMenuID: menu.ID,
		Content:      input.Content,
		ImageURL:     input.ImageURL,
	}

	if err := s.reviewRepo.CreateForResultMenu(ctx, review); err != nil {
		return nil, err
	}

	review.ResultMenu = *menu
	log.Printf("✅ Review created for result menu %d by member %d", menu.ID, member.ID)
	return review.ToResponse(), nil
}

// UploadImage stages the uploaded file locally, transfers it to the FTP
// store under a collision-resistant name and records that name on the input.
// The staging file and the FTP connection are released on every exit path.
// No file means no-op.
func (s *ReviewService) UploadImage(file *multipart.FileHeader, input *CreateInput) error {
	if file == nil || file.Size == 0 {
		return nil
	}

	uniqueName := uuid.New().String() + filepath.Ext(file.Filename)
	localPath := filepath.Join(s.cfg.Upload.StagingDir, uniqueName)

	// Registered before staging so a partial copy is removed too
	defer os.Remove(localPath)

	if err := s.stageFile(file, localPath); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	if err := s.transfer(localPath, uniqueName); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	input.ImageURL = uniqueName
	log.Printf("✅ Review image uploaded: %s", uniqueName)
	return nil
}

// stageFile copies the multipart upload to a local staging path
func (s *ReviewService) stageFile(file *multipart.FileHeader, localPath string) error {
	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return err
	}

	dst, err := os.Create(localPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(dst, src)
	return err
}

// transfer uploads the staged file over a connection scoped to this call
func (s *ReviewService) transfer(localPath, remoteName string) error {
	if err := s.uploader.Connect(); err != nil {
		return err
	}
	defer s.uploader.Disconnect()

	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return s.uploader.Upload(s.cfg.FTP.RemoteDir+"/"+remoteName, f)
}

// List returns a page of all reviews
func (s *ReviewService) List(ctx context.Context, params *pagination.Params) ([]*models.ReviewResponse, int64, error) {
	reviews, total, err := s.reviewRepo.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, 0, err
	}
	return toResponses(reviews), total, nil
}

// ListMine returns a page of the caller's reviews
func (s *ReviewService) ListMine(ctx context.Context, params *pagination.Params, token string) ([]*models.ReviewResponse, int64, error) {
	member, err := resolveCaller(ctx, token, s.cfg.JWT.Secret, s.memberRepo)
	if err != nil {
		return nil, 0, err
	}

	reviews, total, err := s.reviewRepo.ListByMember(ctx, params.Offset, params.Limit, member.ID)
	if err != nil {
		return nil, 0, err
	}
	return toResponses(reviews), total, nil
}

// CountPending counts the caller's result menus still awaiting a review
func (s *ReviewService) CountPending(ctx context.Context, token string) (int64, error) {
	member, err := resolveCaller(ctx, token, s.cfg.JWT.Secret, s.memberRepo)
	if err != nil {
		return 0, err
	}
	return s.resultMenuRepo.CountPendingByMember(ctx, member.ID)
}

func toResponses(reviews []*models.Review) []*models.ReviewResponse {
	responses := make([]*models.ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = review.ToResponse()
	}
	return responses
}
