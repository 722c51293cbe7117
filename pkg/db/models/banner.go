package models

import (
	"time"

	"github.com/google/uuid"
)

// Banner is a homepage promotional slot.
type Banner struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"column:title;not null" json:"title"`
	ImageDesktop string    `gorm:"column:image_desktop;not null" json:"imageDesktop"`
	ImageMobile  *string   `gorm:"column:image_mobile" json:"imageMobile,omitempty"`
	Link         string    `gorm:"column:link;not null;default:''" json:"link"`
	IsActive     bool      `gorm:"column:is_active;not null" json:"isActive"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
