package blogs

import (
	"github.com/craftroots/craftroots-backend/pkg/enums"
)

// CreateBlogInput is the payload for creating a blog post. The slug is always
// derived from the title, never supplied by the caller.
type CreateBlogInput struct {
	Title           string           `json:"title" validate:"required,min=3"`
	Content         string           `json:"content" validate:"required"`
	Excerpt         string           `json:"excerpt"`
	CoverImageURL   string           `json:"coverImageUrl"`
	Tags            []string         `json:"tags"`
	Status          enums.BlogStatus `json:"status"`
	MetaTitle       string           `json:"metaTitle"`
	MetaDescription string           `json:"metaDescription"`
}

// UpdateBlogInput carries partial blog updates. A title change regenerates
// the slug.
type UpdateBlogInput struct {
	Title           *string           `json:"title" validate:"omitempty,min=3"`
	Content         *string           `json:"content"`
	Excerpt         *string           `json:"excerpt"`
	CoverImageURL   *string           `json:"coverImageUrl"`
	Tags            *[]string         `json:"tags"`
	Status          *enums.BlogStatus `json:"status"`
	MetaTitle       *string           `json:"metaTitle"`
	MetaDescription *string           `json:"metaDescription"`
}

// Filter narrows blog listings.
type Filter struct {
	Status *enums.BlogStatus
	Tag    string
	Search string
}
