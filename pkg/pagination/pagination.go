package pagination

import "github.com/craftroots/craftroots-backend/pkg/types"

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 10
	// MaxLimit caps how many rows any listing can request.
	MaxLimit = 100
)

// Params holds page/limit pagination inputs from controllers or services.
type Params struct {
	Page  int
	Limit int
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NormalizePage clamps the page number to 1 or greater.
func NormalizePage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

// NormalizeLimit returns the params' limit clamped to the configured bounds.
func (p Params) NormalizeLimit() int {
	return NormalizeLimit(p.Limit)
}

// NormalizePage returns the params' page clamped to 1 or greater.
func (p Params) NormalizePage() int {
	return NormalizePage(p.Page)
}

// Offset converts the normalized page/limit pair into a row offset.
func (p Params) Offset() int {
	return (NormalizePage(p.Page) - 1) * NormalizeLimit(p.Limit)
}

// Summary builds the response pagination block for a total row count.
func (p Params) Summary(total int64) *types.Pagination {
	limit := NormalizeLimit(p.Limit)
	pages := int((total + int64(limit) - 1) / int64(limit))
	return &types.Pagination{
		Total: total,
		Page:  NormalizePage(p.Page),
		Pages: pages,
	}
}
