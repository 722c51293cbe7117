package catalog

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/craftroots/craftroots-backend/pkg/db/models"
	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
)

// StockDecrementer draws a quantity from one of a product's stock pools.
type StockDecrementer interface {
	Decrement(ctx context.Context, tx *gorm.DB, product *models.Product, variant string, qty int) error
}

type stockLedger struct{}

// NewStockLedger exposes the default stock decrement implementation.
func NewStockLedger() StockDecrementer {
	return stockLedger{}
}

// Decrement resolves the variant to a pool and conditionally subtracts qty.
// The guarded UPDATE never drives a quantity below zero: when concurrent
// completions race, the loser matches no row and the inquiry fails with
// InsufficientStock instead.
func (stockLedger) Decrement(ctx context.Context, tx *gorm.DB, product *models.Product, variant string, qty int) error {
	if qty <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	if tx == nil {
		return pkgerrors.New(pkgerrors.CodeDependency, "transaction required for stock decrement")
	}

	pool, err := ResolveStockPool(product, variant)
	if err != nil {
		return err
	}

	var res *gorm.DB
	switch pool.Kind {
	case PoolPrimary:
		res = tx.WithContext(ctx).Exec(`
			UPDATE products
			SET base_quantity = base_quantity - ?,
				updated_at = CURRENT_TIMESTAMP
			WHERE id = ? AND base_quantity >= ?
		`, qty, product.ID, qty)
	default:
		res = tx.WithContext(ctx).Exec(`
			UPDATE product_options
			SET quantity = quantity - ?,
				updated_at = CURRENT_TIMESTAMP
			WHERE product_id = ? AND color = ? AND quantity >= ?
		`, qty, product.ID, pool.Color, qty)
	}
	if res.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, res.Error, "decrement stock")
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeInsufficientStock, fmt.Sprintf("insufficient stock for variant %q", pool.Label)).
			WithDetails(map[string]any{"variant": pool.Label, "requested": qty, "available": pool.Quantity})
	}

	// keep the in-memory copy consistent for callers that reuse it
	switch pool.Kind {
	case PoolPrimary:
		product.BaseQuantity -= qty
	default:
		for i := range product.Options {
			if product.Options[i].Color == pool.Color {
				product.Options[i].Quantity -= qty
				break
			}
		}
	}
	return nil
}
