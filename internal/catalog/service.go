package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/craftroots/craftroots-backend/pkg/db"
	"github.com/craftroots/craftroots-backend/pkg/db/models"
	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
	"github.com/craftroots/craftroots-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes catalog management operations.
type Service interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter, page pagination.Params) ([]models.Product, int64, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	CreateCategory(ctx context.Context, input CreateCategoryInput) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateSubcategory(ctx context.Context, input CreateSubcategoryInput) (*models.Subcategory, error)
	ListSubcategories(ctx context.Context, parentCategoryID *uuid.UUID) ([]models.Subcategory, error)
	UpdateSubcategory(ctx context.Context, id uuid.UUID, input UpdateSubcategoryInput) (*models.Subcategory, error)
	DeleteSubcategory(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService constructs a catalog service instance.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	if input.BaseQuantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "baseQuantity cannot be negative")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	if input.Unit != "" && !input.Unit.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid unit")
	}
	if err := validateOptions(input.Options, input.BaseColor); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindCategoryByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}
	subcategory, err := s.repo.FindSubcategoryByID(ctx, input.SubcategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "subcategory not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load subcategory")
	}
	if subcategory.ParentCategoryID != input.CategoryID {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "subcategory does not belong to category")
	}

	product := &models.Product{
		ID:              uuid.New(),
		Name:            input.Name,
		CategoryID:      input.CategoryID,
		SubcategoryID:   input.SubcategoryID,
		Description:     input.Description,
		FullDescription: input.FullDescription,
		Price:           input.Price,
		ImageURL:        input.ImageURL,
		Images:          pq.StringArray(input.Images),
		BaseQuantity:    input.BaseQuantity,
		BaseColor:       input.BaseColor,
		Unit:            input.Unit,
		Material:        input.Material,
		Style:           input.Style,
		Length:          input.Length,
		BlousePiece:     input.BlousePiece,
		DesignNo:        input.DesignNo,
		Options:         buildOptions(uuid.Nil, input.Options),
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if _, err := s.repo.WithTx(tx).CreateProduct(ctx, product); err != nil {
			if db.IsUniqueViolation(err) {
				return pkgerrors.New(pkgerrors.CodeConflict, "duplicate option color")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

func (s *service) ListProducts(ctx context.Context, filter ProductFilter, page pagination.Params) ([]models.Product, int64, error) {
	products, total, err := s.repo.ListProducts(ctx, filter, page)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return products, total, nil
}

func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*models.Product, error) {
	if input.BaseQuantity != nil && *input.BaseQuantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "baseQuantity cannot be negative")
	}
	if input.Price != nil && input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.CategoryID != nil {
		updates["category_id"] = *input.CategoryID
	}
	if input.SubcategoryID != nil {
		updates["subcategory_id"] = *input.SubcategoryID
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.FullDescription != nil {
		updates["full_description"] = *input.FullDescription
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.Images != nil {
		updates["images"] = pq.StringArray(*input.Images)
	}
	if input.BaseQuantity != nil {
		updates["base_quantity"] = *input.BaseQuantity
	}
	if input.BaseColor != nil {
		updates["base_color"] = *input.BaseColor
	}
	if input.Unit != nil {
		if !input.Unit.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid unit")
		}
		updates["unit"] = *input.Unit
	}
	if input.Material != nil {
		updates["material"] = *input.Material
	}
	if input.Style != nil {
		updates["style"] = *input.Style
	}
	if input.Length != nil {
		updates["length"] = *input.Length
	}
	if input.BlousePiece != nil {
		updates["blouse_piece"] = *input.BlousePiece
	}
	if input.DesignNo != nil {
		updates["design_no"] = *input.DesignNo
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.FindProductByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
		}
		if input.Options != nil {
			// replacement options are checked against the base color the
			// product will end up with, not just the one in the payload
			baseColor := existing.BaseColor
			if input.BaseColor != nil {
				baseColor = input.BaseColor
			}
			if err := validateOptions(*input.Options, baseColor); err != nil {
				return err
			}
		}
		if len(updates) > 0 {
			if err := repo.UpdateProduct(ctx, id, updates); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
			}
		}
		if input.Options != nil {
			if err := repo.ReplaceProductOptions(ctx, id, buildOptions(id, *input.Options)); err != nil {
				if db.IsUniqueViolation(err) {
					return pkgerrors.New(pkgerrors.CodeConflict, "duplicate option color")
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace product options")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}

func (s *service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*models.Category, error) {
	category := &models.Category{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	if _, err := s.repo.CreateCategory(ctx, category); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "category name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create category")
	}
	return category, nil
}

func (s *service) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	return categories, nil
}

func (s *service) UpdateCategory(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*models.Category, error) {
	if _, err := s.repo.FindCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if len(updates) > 0 {
		if err := s.repo.UpdateCategory(ctx, id, updates); err != nil {
			if db.IsUniqueViolation(err) {
				return nil, pkgerrors.New(pkgerrors.CodeConflict, "category name already exists")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update category")
		}
	}
	category, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload category")
	}
	return category, nil
}

func (s *service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete category")
	}
	return nil
}

func (s *service) CreateSubcategory(ctx context.Context, input CreateSubcategoryInput) (*models.Subcategory, error) {
	if _, err := s.repo.FindCategoryByID(ctx, input.ParentCategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "parent category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load parent category")
	}

	subcategory := &models.Subcategory{
		ID:               uuid.New(),
		Name:             input.Name,
		ParentCategoryID: input.ParentCategoryID,
		ImageURL:         input.ImageURL,
	}
	if _, err := s.repo.CreateSubcategory(ctx, subcategory); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "subcategory name already exists in category")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create subcategory")
	}
	return subcategory, nil
}

func (s *service) ListSubcategories(ctx context.Context, parentCategoryID *uuid.UUID) ([]models.Subcategory, error) {
	subcategories, err := s.repo.ListSubcategories(ctx, parentCategoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list subcategories")
	}
	return subcategories, nil
}

func (s *service) UpdateSubcategory(ctx context.Context, id uuid.UUID, input UpdateSubcategoryInput) (*models.Subcategory, error) {
	if _, err := s.repo.FindSubcategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "subcategory not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load subcategory")
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.ParentCategoryID != nil {
		if _, err := s.repo.FindCategoryByID(ctx, *input.ParentCategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "parent category not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load parent category")
		}
		updates["parent_category_id"] = *input.ParentCategoryID
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if len(updates) > 0 {
		if err := s.repo.UpdateSubcategory(ctx, id, updates); err != nil {
			if db.IsUniqueViolation(err) {
				return nil, pkgerrors.New(pkgerrors.CodeConflict, "subcategory name already exists in category")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update subcategory")
		}
	}
	subcategory, err := s.repo.FindSubcategoryByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload subcategory")
	}
	return subcategory, nil
}

func (s *service) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindSubcategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "subcategory not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load subcategory")
	}
	if err := s.repo.DeleteSubcategory(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete subcategory")
	}
	return nil
}

func validateOptions(options []ProductOptionInput, baseColor *string) error {
	seen := map[string]struct{}{}
	for _, opt := range options {
		if opt.Color == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "option color required")
		}
		if opt.Quantity < 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "option quantity cannot be negative")
		}
		if opt.Price != nil && opt.Price.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, "option price cannot be negative")
		}
		if _, dup := seen[opt.Color]; dup {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("duplicate option color %q", opt.Color))
		}
		seen[opt.Color] = struct{}{}
		if baseColor != nil && opt.Color == *baseColor {
			return pkgerrors.New(pkgerrors.CodeValidation, "option color cannot duplicate base color")
		}
	}
	return nil
}

func buildOptions(productID uuid.UUID, inputs []ProductOptionInput) []models.ProductOption {
	options := make([]models.ProductOption, 0, len(inputs))
	for i, opt := range inputs {
		option := models.ProductOption{
			ID:        uuid.New(),
			Color:     opt.Color,
			ColorCode: opt.ColorCode,
			Quantity:  opt.Quantity,
			Price:     opt.Price,
			ImageURLs: pq.StringArray(opt.ImageURLs),
			Position:  i,
		}
		if productID != uuid.Nil {
			option.ProductID = productID
		}
		options = append(options, option)
	}
	return options
}
