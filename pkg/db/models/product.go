package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/craftroots/craftroots-backend/pkg/enums"
)

// Product is the canonical catalog listing. BaseQuantity is the stock pool for
// the primary variant (labelled by BaseColor); each option row carries its own
// pool. Quantities are only ever decremented by inquiry fulfillment.
type Product struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name            string            `gorm:"column:name;not null;index" json:"name"`
	CategoryID      uuid.UUID         `gorm:"column:category_id;type:uuid;not null;index" json:"categoryId"`
	Category        *Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubcategoryID   uuid.UUID         `gorm:"column:subcategory_id;type:uuid;not null;index" json:"subcategoryId"`
	Subcategory     *Subcategory      `gorm:"foreignKey:SubcategoryID" json:"subcategory,omitempty"`
	Description     string            `gorm:"column:description;not null" json:"description"`
	FullDescription string            `gorm:"column:full_description;not null;default:''" json:"fullDescription"`
	Price           decimal.Decimal   `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	ImageURL        string            `gorm:"column:image_url;not null" json:"imageUrl"`
	Images          pq.StringArray    `gorm:"column:images;type:text[]" json:"images"`
	BaseQuantity    int               `gorm:"column:base_quantity;not null;default:0" json:"baseQuantity"`
	BaseColor       *string           `gorm:"column:base_color" json:"baseColor,omitempty"`
	Unit            enums.ProductUnit `gorm:"column:unit;not null;default:'piece'" json:"unit"`
	Material        string            `gorm:"column:material;not null;default:'Cotton'" json:"material"`
	Style           string            `gorm:"column:style;not null;default:'Traditional'" json:"style"`
	Length          string            `gorm:"column:length;not null;default:'6 meters'" json:"length"`
	BlousePiece     string            `gorm:"column:blouse_piece;not null;default:'Yes'" json:"blousePiece"`
	DesignNo        string            `gorm:"column:design_no;not null;default:'N/A'" json:"designNo"`
	Options         []ProductOption   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"options"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// ProductOption is one color variant with its own stock pool and optional
// price override (nil means the product's base price applies).
type ProductOption struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ProductID uuid.UUID        `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_product_options_color" json:"productId"`
	Color     string           `gorm:"column:color;not null;uniqueIndex:idx_product_options_color" json:"color"`
	ColorCode string           `gorm:"column:color_code;not null;default:''" json:"colorCode"`
	Quantity  int              `gorm:"column:quantity;not null;default:0" json:"quantity"`
	Price     *decimal.Decimal `gorm:"column:price;type:numeric(12,2)" json:"price,omitempty"`
	ImageURLs pq.StringArray   `gorm:"column:image_urls;type:text[]" json:"imageUrls"`
	Position  int              `gorm:"column:position;not null;default:0" json:"position"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
