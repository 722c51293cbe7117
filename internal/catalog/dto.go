package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/craftroots/craftroots-backend/pkg/enums"
)

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Name            string
	CategoryID      uuid.UUID
	SubcategoryID   uuid.UUID
	Description     string
	FullDescription string
	Price           decimal.Decimal
	ImageURL        string
	Images          []string
	BaseQuantity    int
	BaseColor       *string
	Unit            enums.ProductUnit
	Material        string
	Style           string
	Length          string
	BlousePiece     string
	DesignNo        string
	Options         []ProductOptionInput
}

// ProductOptionInput is one color variant supplied with a product.
type ProductOptionInput struct {
	Color     string
	ColorCode string
	Quantity  int
	Price     *decimal.Decimal
	ImageURLs []string
}

// UpdateProductInput holds optional mutation values for a product. Nil fields
// are left untouched; a non-nil Options slice replaces the option set.
type UpdateProductInput struct {
	Name            *string
	CategoryID      *uuid.UUID
	SubcategoryID   *uuid.UUID
	Description     *string
	FullDescription *string
	Price           *decimal.Decimal
	ImageURL        *string
	Images          *[]string
	BaseQuantity    *int
	BaseColor       *string
	Unit            *enums.ProductUnit
	Material        *string
	Style           *string
	Length          *string
	BlousePiece     *string
	DesignNo        *string
	Options         *[]ProductOptionInput
}

// CreateCategoryInput holds the payload to create a category.
type CreateCategoryInput struct {
	Name        string
	Description string
	ImageURL    string
}

// UpdateCategoryInput holds optional mutation values for a category.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	ImageURL    *string
}

// CreateSubcategoryInput holds the payload to create a subcategory.
type CreateSubcategoryInput struct {
	Name             string
	ParentCategoryID uuid.UUID
	ImageURL         string
}

// UpdateSubcategoryInput holds optional mutation values for a subcategory.
type UpdateSubcategoryInput struct {
	Name             *string
	ParentCategoryID *uuid.UUID
	ImageURL         *string
}
