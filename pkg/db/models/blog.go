package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/craftroots/craftroots-backend/pkg/enums"
)

// Blog is a content post with SEO fields. Slug is generated from the title and
// suffixed on collision.
type Blog struct {
	ID              uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title           string           `gorm:"column:title;not null" json:"title"`
	Slug            string           `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Content         string           `gorm:"column:content;not null" json:"content"`
	Excerpt         string           `gorm:"column:excerpt;not null;default:''" json:"excerpt"`
	CoverImageURL   string           `gorm:"column:cover_image_url;not null;default:''" json:"coverImageUrl"`
	Tags            pq.StringArray   `gorm:"column:tags;type:text[]" json:"tags"`
	Status          enums.BlogStatus `gorm:"column:status;not null;default:'draft';index" json:"status"`
	PublishedAt     *time.Time       `gorm:"column:published_at" json:"publishedAt,omitempty"`
	MetaTitle       string           `gorm:"column:meta_title;not null;default:''" json:"metaTitle"`
	MetaDescription string           `gorm:"column:meta_description;not null;default:''" json:"metaDescription"`
	CreatedAt       time.Time        `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
