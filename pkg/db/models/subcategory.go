package models

import (
	"time"

	"github.com/google/uuid"
)

// Subcategory nests under a parent category.
type Subcategory struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name             string    `gorm:"column:name;not null;uniqueIndex:idx_subcategories_parent_name" json:"name"`
	ParentCategoryID uuid.UUID `gorm:"column:parent_category_id;type:uuid;not null;uniqueIndex:idx_subcategories_parent_name" json:"parentCategoryId"`
	ParentCategory   *Category `gorm:"foreignKey:ParentCategoryID;constraint:OnDelete:CASCADE" json:"parentCategory,omitempty"`
	ImageURL         string    `gorm:"column:image_url;not null" json:"imageUrl"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
