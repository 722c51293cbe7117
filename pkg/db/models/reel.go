package models

import (
	"time"

	"github.com/google/uuid"
)

// Reel is a short promotional video surfaced on the storefront.
type Reel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"column:title;not null" json:"title"`
	VideoURL     string    `gorm:"column:video_url;not null" json:"videoUrl"`
	ThumbnailURL string    `gorm:"column:thumbnail_url;not null;default:''" json:"thumbnailUrl"`
	IsActive     bool      `gorm:"column:is_active;not null" json:"isActive"`
	Position     int       `gorm:"column:position;not null;default:0" json:"position"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
