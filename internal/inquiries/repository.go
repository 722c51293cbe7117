package inquiries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftroots/craftroots-backend/pkg/db/models"
	"github.com/craftroots/craftroots-backend/pkg/enums"
	"github.com/craftroots/craftroots-backend/pkg/pagination"
)

// Repository is the inquiry data access surface.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, inquiry *models.Inquiry) (*models.Inquiry, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error)
	List(ctx context.Context, filter Filter, page pagination.Params) ([]models.Inquiry, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
	ClaimCompletion(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an inquiries repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, inquiry *models.Inquiry) (*models.Inquiry, error) {
	if err := r.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return nil, err
	}
	return inquiry, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&inquiry).Error
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *repository) List(ctx context.Context, filter Filter, page pagination.Params) ([]models.Inquiry, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Inquiry{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Inquiry
	err := query.
		Preload("Product").
		Order("created_at DESC").
		Limit(page.NormalizeLimit()).
		Offset(page.Offset()).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Inquiry{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// ClaimCompletion flips the inquiry to Completed only when it is not already
// there, reporting whether this call made the transition. The conditional
// write takes the row lock, so a concurrent duplicate blocks until the winner
// commits and then matches no row.
func (r *repository) ClaimCompletion(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Inquiry{}).
		Where("id = ? AND status <> ?", id, enums.InquiryStatusCompleted).
		Update("status", enums.InquiryStatusCompleted)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Inquiry{}).Error
}
