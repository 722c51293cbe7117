package catalog

import (
	"fmt"

	"github.com/craftroots/craftroots-backend/pkg/db/models"
	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
)

// PoolKind identifies which stock pool a variant resolves to.
type PoolKind string

const (
	PoolPrimary PoolKind = "primary"
	PoolOption  PoolKind = "option"
)

// StockPoolRef points at one countable quantity of a product: either the
// base quantity or a single option's quantity.
type StockPoolRef struct {
	Kind     PoolKind
	Label    string // display label for errors and notifications
	Color    string // option color; empty for the primary pool
	Quantity int    // quantity at resolution time
}

// ResolveStockPool maps a variant label onto the product's stock pool. An
// empty label or a label equal to the product's base color selects the
// primary pool; otherwise the label must match one of the option colors.
func ResolveStockPool(product *models.Product, variant string) (StockPoolRef, error) {
	if product == nil {
		return StockPoolRef{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	baseColor := ""
	if product.BaseColor != nil {
		baseColor = *product.BaseColor
	}

	if variant == "" || variant == baseColor {
		label := baseColor
		if label == "" {
			label = "default"
		}
		return StockPoolRef{
			Kind:     PoolPrimary,
			Label:    label,
			Quantity: product.BaseQuantity,
		}, nil
	}

	for _, opt := range product.Options {
		if opt.Color == variant {
			return StockPoolRef{
				Kind:     PoolOption,
				Label:    opt.Color,
				Color:    opt.Color,
				Quantity: opt.Quantity,
			}, nil
		}
	}

	return StockPoolRef{}, pkgerrors.New(pkgerrors.CodeInvalidVariant, fmt.Sprintf("variant %q does not exist", variant)).
		WithDetails(map[string]any{"variant": variant})
}
