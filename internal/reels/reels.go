package reels

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftroots/craftroots-backend/pkg/db/models"
	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
)

// CreateReelInput is the payload for adding a homepage reel.
type CreateReelInput struct {
	Title        string `json:"title" validate:"required"`
	VideoURL     string `json:"videoUrl" validate:"required,url"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,url"`
	IsActive     *bool  `json:"isActive"`
	Position     *int   `json:"position" validate:"omitempty,min=0"`
}

// UpdateReelInput carries partial reel updates.
type UpdateReelInput struct {
	Title        *string `json:"title"`
	VideoURL     *string `json:"videoUrl" validate:"omitempty,url"`
	ThumbnailURL *string `json:"thumbnailUrl" validate:"omitempty,url"`
	IsActive     *bool   `json:"isActive"`
	Position     *int    `json:"position" validate:"omitempty,min=0"`
}

// Service exposes reel management operations.
type Service interface {
	Create(ctx context.Context, input CreateReelInput) (*models.Reel, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Reel, error)
	List(ctx context.Context, activeOnly bool) ([]models.Reel, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateReelInput) (*models.Reel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	db *gorm.DB
}

// NewService constructs a reel service bound to the provided DB.
func NewService(db *gorm.DB) (Service, error) {
	if db == nil {
		return nil, fmt.Errorf("db handle required")
	}
	return &service{db: db}, nil
}

func (s *service) Create(ctx context.Context, input CreateReelInput) (*models.Reel, error) {
	reel := &models.Reel{
		ID:           uuid.New(),
		Title:        input.Title,
		VideoURL:     input.VideoURL,
		ThumbnailURL: input.ThumbnailURL,
		IsActive:     true,
	}
	if input.IsActive != nil {
		reel.IsActive = *input.IsActive
	}
	if input.Position != nil {
		reel.Position = *input.Position
	} else {
		// New reels append to the end of the strip.
		next, err := s.nextPosition(ctx)
		if err != nil {
			return nil, err
		}
		reel.Position = next
	}

	if err := s.db.WithContext(ctx).Create(reel).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create reel")
	}
	return reel, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Reel, error) {
	var reel models.Reel
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "reel not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load reel")
	}
	return &reel, nil
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]models.Reel, error) {
	query := s.db.WithContext(ctx).Model(&models.Reel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var reels []models.Reel
	if err := query.Order("position ASC, created_at DESC").Find(&reels).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reels")
	}
	return reels, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateReelInput) (*models.Reel, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.VideoURL != nil {
		updates["video_url"] = *input.VideoURL
	}
	if input.ThumbnailURL != nil {
		updates["thumbnail_url"] = *input.ThumbnailURL
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if input.Position != nil {
		if *input.Position < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "position cannot be negative")
		}
		updates["position"] = *input.Position
	}
	if len(updates) > 0 {
		err := s.db.WithContext(ctx).
			Model(&models.Reel{}).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update reel")
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
		Delete(&models.Reel{}).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete reel")
	}
	return nil
}

func (s *service) nextPosition(ctx context.Context) (int, error) {
	var next int
	err := s.db.WithContext(ctx).
		Model(&models.Reel{}).
		Select("COALESCE(MAX(position) + 1, 0)").
		Scan(&next).Error
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "next reel position")
	}
	return next, nil
}
