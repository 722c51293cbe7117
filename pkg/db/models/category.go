package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a top-level catalog grouping.
type Category struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"column:description;not null" json:"description"`
	ImageURL    string    `gorm:"column:image_url;not null" json:"imageUrl"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
