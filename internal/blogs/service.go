package blogs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/craftroots/craftroots-backend/pkg/db"
	"github.com/craftroots/craftroots-backend/pkg/db/models"
	"github.com/craftroots/craftroots-backend/pkg/enums"
	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
	"github.com/craftroots/craftroots-backend/pkg/pagination"
)

// Service exposes blog management operations.
type Service interface {
	Create(ctx context.Context, input CreateBlogInput) (*models.Blog, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Blog, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Blog, error)
	List(ctx context.Context, filter Filter, page pagination.Params) ([]models.Blog, int64, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBlogInput) (*models.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService constructs a blog service instance.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("blog repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, input CreateBlogInput) (*models.Blog, error) {
	status := input.Status
	if status == "" {
		status = enums.BlogStatusDraft
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid blog status")
	}

	slug, err := s.uniqueSlug(ctx, input.Title, uuid.Nil)
	if err != nil {
		return nil, err
	}

	blog := &models.Blog{
		ID:              uuid.New(),
		Title:           input.Title,
		Slug:            slug,
		Content:         input.Content,
		Excerpt:         input.Excerpt,
		CoverImageURL:   input.CoverImageURL,
		Tags:            pq.StringArray(input.Tags),
		Status:          status,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
	}
	if status == enums.BlogStatusPublished {
		published := s.now().UTC()
		blog.PublishedAt = &published
	}

	if _, err := s.repo.Create(ctx, blog); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "blog slug already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create blog")
	}
	return blog, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "blog not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load blog")
	}
	return blog, nil
}

// GetPublishedBySlug resolves the public, SEO-facing lookup. Draft posts are
// invisible through this path.
func (s *service) GetPublishedBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "blog slug is required")
	}
	published := enums.BlogStatusPublished
	blog, err := s.repo.FindBySlug(ctx, slug, &published)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "blog not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load blog")
	}
	return blog, nil
}

func (s *service) List(ctx context.Context, filter Filter, page pagination.Params) ([]models.Blog, int64, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid blog status")
	}
	posts, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list blogs")
	}
	return posts, total, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateBlogInput) (*models.Blog, error) {
	blog, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Title != nil && *input.Title != blog.Title {
		slug, err := s.uniqueSlug(ctx, *input.Title, id)
		if err != nil {
			return nil, err
		}
		updates["title"] = *input.Title
		updates["slug"] = slug
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.Excerpt != nil {
		updates["excerpt"] = *input.Excerpt
	}
	if input.CoverImageURL != nil {
		updates["cover_image_url"] = *input.CoverImageURL
	}
	if input.Tags != nil {
		updates["tags"] = pq.StringArray(*input.Tags)
	}
	if input.MetaTitle != nil {
		updates["meta_title"] = *input.MetaTitle
	}
	if input.MetaDescription != nil {
		updates["meta_description"] = *input.MetaDescription
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid blog status")
		}
		updates["status"] = *input.Status
		switch *input.Status {
		case enums.BlogStatusPublished:
			if blog.PublishedAt == nil {
				updates["published_at"] = s.now().UTC()
			}
		case enums.BlogStatusDraft:
			updates["published_at"] = nil
		}
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			if db.IsUniqueViolation(err) {
				return nil, pkgerrors.New(pkgerrors.CodeConflict, "blog slug already exists")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update blog")
		}
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete blog")
	}
	return nil
}

// uniqueSlug derives the slug from the title and appends a timestamp suffix
// when the base slug is already taken by another post.
func (s *service) uniqueSlug(ctx context.Context, title string, excludeID uuid.UUID) (string, error) {
	base := Slugify(title)
	if base == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "title must contain letters or digits")
	}
	taken, err := s.repo.SlugExists(ctx, base, excludeID)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check slug")
	}
	if !taken {
		return base, nil
	}
	return fmt.Sprintf("%s-%d", base, s.now().UnixMilli()), nil
}
