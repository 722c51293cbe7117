package blogs

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftroots/craftroots-backend/pkg/db/models"
	"github.com/craftroots/craftroots-backend/pkg/enums"
	"github.com/craftroots/craftroots-backend/pkg/pagination"
)

// Repository is the blog data access surface.
type Repository interface {
	Create(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error)
	FindBySlug(ctx context.Context, slug string, status *enums.BlogStatus) (*models.Blog, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	List(ctx context.Context, filter Filter, page pagination.Params) ([]models.Blog, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a blog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	if err := r.db.WithContext(ctx).Create(blog).Error; err != nil {
		return nil, err
	}
	return blog, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&blog).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *repository) FindBySlug(ctx context.Context, slug string, status *enums.BlogStatus) (*models.Blog, error) {
	query := r.db.WithContext(ctx).Where("slug = ?", slug)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var blog models.Blog
	if err := query.First(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *repository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.Blog{}).
		Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) List(ctx context.Context, filter Filter, page pagination.Params) ([]models.Blog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Blog{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Tag != "" {
		// Tags are stored as a text array; a substring match keeps the
		// filter portable across postgres and the sqlite test driver.
		query = query.Where("CAST(tags AS TEXT) LIKE ?", "%"+filter.Tag+"%")
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR excerpt LIKE ? OR content LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Blog
	err := query.
		Order("created_at DESC").
		Limit(page.NormalizeLimit()).
		Offset(page.Offset()).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Blog{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Blog{}).Error
}
