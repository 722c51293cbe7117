package workshops

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftroots/craftroots-backend/pkg/db/models"
	"github.com/craftroots/craftroots-backend/pkg/enums"
	"github.com/craftroots/craftroots-backend/pkg/pagination"
)

// Repository is the workshop data access surface.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateWorkshop(ctx context.Context, workshop *models.Workshop) (*models.Workshop, error)
	FindWorkshopByID(ctx context.Context, id uuid.UUID) (*models.Workshop, error)
	ListWorkshops(ctx context.Context, filter WorkshopFilter, page pagination.Params) ([]models.Workshop, int64, error)
	UpdateWorkshop(ctx context.Context, id uuid.UUID, updates map[string]any) error
	DeleteWorkshop(ctx context.Context, id uuid.UUID) error

	CreateRegistration(ctx context.Context, registration *models.WorkshopRegistration) (*models.WorkshopRegistration, error)
	FindRegistrationByID(ctx context.Context, id uuid.UUID) (*models.WorkshopRegistration, error)
	ListRegistrations(ctx context.Context, filter RegistrationFilter, page pagination.Params) ([]models.WorkshopRegistration, int64, error)
	UpdateRegistration(ctx context.Context, id uuid.UUID, updates map[string]any) error
	DeleteRegistration(ctx context.Context, id uuid.UUID) error
	CountConfirmed(ctx context.Context, workshopID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a workshop repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateWorkshop(ctx context.Context, workshop *models.Workshop) (*models.Workshop, error) {
	if err := r.db.WithContext(ctx).Create(workshop).Error; err != nil {
		return nil, err
	}
	return workshop, nil
}

func (r *repository) FindWorkshopByID(ctx context.Context, id uuid.UUID) (*models.Workshop, error) {
	var workshop models.Workshop
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&workshop).Error
	if err != nil {
		return nil, err
	}
	return &workshop, nil
}

func (r *repository) ListWorkshops(ctx context.Context, filter WorkshopFilter, page pagination.Params) ([]models.Workshop, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Workshop{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var workshops []models.Workshop
	err := query.
		Order("date_time ASC").
		Limit(page.NormalizeLimit()).
		Offset(page.Offset()).
		Find(&workshops).Error
	if err != nil {
		return nil, 0, err
	}
	return workshops, total, nil
}

func (r *repository) UpdateWorkshop(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Workshop{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) DeleteWorkshop(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Workshop{}).Error
}

func (r *repository) CreateRegistration(ctx context.Context, registration *models.WorkshopRegistration) (*models.WorkshopRegistration, error) {
	if err := r.db.WithContext(ctx).Create(registration).Error; err != nil {
		return nil, err
	}
	return registration, nil
}

func (r *repository) FindRegistrationByID(ctx context.Context, id uuid.UUID) (*models.WorkshopRegistration, error) {
	var registration models.WorkshopRegistration
	err := r.db.WithContext(ctx).
		Preload("Workshop").
		Where("id = ?", id).
		First(&registration).Error
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

func (r *repository) ListRegistrations(ctx context.Context, filter RegistrationFilter, page pagination.Params) ([]models.WorkshopRegistration, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.WorkshopRegistration{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.WorkshopID != nil {
		query = query.Where("workshop_id = ?", *filter.WorkshopID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var registrations []models.WorkshopRegistration
	err := query.
		Preload("Workshop").
		Order("created_at DESC").
		Limit(page.NormalizeLimit()).
		Offset(page.Offset()).
		Find(&registrations).Error
	if err != nil {
		return nil, 0, err
	}
	return registrations, total, nil
}

func (r *repository) UpdateRegistration(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.WorkshopRegistration{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) DeleteRegistration(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.WorkshopRegistration{}).Error
}

func (r *repository) CountConfirmed(ctx context.Context, workshopID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WorkshopRegistration{}).
		Where("workshop_id = ? AND status = ?", workshopID, enums.RegistrationStatusConfirmed).
		Count(&count).Error
	return count, err
}
