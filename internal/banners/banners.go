package banners

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftroots/craftroots-backend/pkg/db/models"
	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
)

// CreateBannerInput is the payload for creating a homepage banner.
type CreateBannerInput struct {
	Title        string  `json:"title" validate:"required"`
	ImageDesktop string  `json:"imageDesktop" validate:"required,url"`
	ImageMobile  *string `json:"imageMobile" validate:"omitempty,url"`
	Link         string  `json:"link"`
	IsActive     *bool   `json:"isActive"`
}

// UpdateBannerInput carries partial banner updates.
type UpdateBannerInput struct {
	Title        *string `json:"title"`
	ImageDesktop *string `json:"imageDesktop" validate:"omitempty,url"`
	ImageMobile  *string `json:"imageMobile" validate:"omitempty,url"`
	Link         *string `json:"link"`
	IsActive     *bool   `json:"isActive"`
}

// Service exposes banner management operations.
type Service interface {
	Create(ctx context.Context, input CreateBannerInput) (*models.Banner, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Banner, error)
	List(ctx context.Context, activeOnly bool) ([]models.Banner, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBannerInput) (*models.Banner, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	db *gorm.DB
}

// NewService constructs a banner service bound to the provided DB.
func NewService(db *gorm.DB) (Service, error) {
	if db == nil {
		return nil, fmt.Errorf("db handle required")
	}
	return &service{db: db}, nil
}

func (s *service) Create(ctx context.Context, input CreateBannerInput) (*models.Banner, error) {
	banner := &models.Banner{
		ID:           uuid.New(),
		Title:        input.Title,
		ImageDesktop: input.ImageDesktop,
		ImageMobile:  input.ImageMobile,
		Link:         input.Link,
		IsActive:     true,
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	if err := s.db.WithContext(ctx).Create(banner).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create banner")
	}
	return banner, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Banner, error) {
	var banner models.Banner
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&banner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "banner not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load banner")
	}
	return &banner, nil
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]models.Banner, error) {
	query := s.db.WithContext(ctx).Model(&models.Banner{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var banners []models.Banner
	if err := query.Order("created_at DESC").Find(&banners).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list banners")
	}
	return banners, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateBannerInput) (*models.Banner, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.ImageDesktop != nil {
		updates["image_desktop"] = *input.ImageDesktop
	}
	if input.ImageMobile != nil {
		updates["image_mobile"] = *input.ImageMobile
	}
	if input.Link != nil {
		updates["link"] = *input.Link
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if len(updates) > 0 {
		err := s.db.WithContext(ctx).
			Model(&models.Banner{}).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update banner")
		}
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Banner{}).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete banner")
	}
	return nil
}
