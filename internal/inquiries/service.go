package inquiries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftroots/craftroots-backend/internal/catalog"
	"github.com/craftroots/craftroots-backend/pkg/db/models"
	"github.com/craftroots/craftroots-backend/pkg/enums"
	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
	"github.com/craftroots/craftroots-backend/pkg/metrics"
	"github.com/craftroots/craftroots-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Notifier announces new inquiries to the store owner. Implementations must
// not block; delivery failures never affect the inquiry.
type Notifier interface {
	InquiryCreated(ctx context.Context, inquiry *models.Inquiry, product *models.Product)
}

// Service exposes the inquiry lifecycle.
type Service interface {
	Create(ctx context.Context, input CreateInquiryInput) (*models.Inquiry, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Inquiry, error)
	List(ctx context.Context, filter Filter, page pagination.Params) ([]models.Inquiry, int64, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInquiryInput) (*models.Inquiry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     Repository
	products catalog.Repository
	ledger   catalog.StockDecrementer
	tx       txRunner
	notifier Notifier
	metrics  *metrics.FulfillmentMetrics
}

// NewService builds an inquiry service with the required dependencies.
// notifier and fm may be nil.
func NewService(repo Repository, products catalog.Repository, ledger catalog.StockDecrementer, tx txRunner, notifier Notifier, fm *metrics.FulfillmentMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inquiries repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if ledger == nil {
		return nil, fmt.Errorf("stock ledger required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		repo:     repo,
		products: products,
		ledger:   ledger,
		tx:       tx,
		notifier: notifier,
		metrics:  fm,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateInquiryInput) (*models.Inquiry, error) {
	if input.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if !input.BuyOption.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid buy option")
	}

	product, err := s.products.FindProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	// An unknown variant is rejected up front so completion can never hit an
	// ambiguous stock pool later.
	if _, err := catalog.ResolveStockPool(product, input.Variant); err != nil {
		return nil, err
	}

	inquiry := &models.Inquiry{
		ID:          uuid.New(),
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
		BuyOption:   input.BuyOption,
		CompanyName: input.CompanyName,
		Location:    input.Location,
		Quantity:    input.Quantity,
		ProductID:   input.ProductID,
		Variant:     input.Variant,
		Status:      enums.InquiryStatusPending,
		Message:     input.Message,
	}
	if _, err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create inquiry")
	}
	inquiry.Product = product

	if s.notifier != nil {
		s.notifier.InquiryCreated(context.WithoutCancel(ctx), inquiry, product)
	}
	return inquiry, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	inquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "inquiry not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load inquiry")
	}
	return inquiry, nil
}

func (s *service) List(ctx context.Context, filter Filter, page pagination.Params) ([]models.Inquiry, int64, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid status filter")
	}
	items, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list inquiries")
	}
	return items, total, nil
}

// Update applies the admin allowlist to an inquiry. The first transition into
// Completed additionally deducts the inquiry's quantity from the product's
// stock pool; the status write and the deduction commit or abort as one unit.
// Updating an already-Completed inquiry is a plain field update.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInquiryInput) (*models.Inquiry, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
	}
	if input.Status == nil && input.AdminNotes == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no updatable fields supplied")
	}

	start := time.Now()
	outcome := "updated"
	var variantKind string

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		inquiry, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "inquiry not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load inquiry")
		}

		// The conditional status write decides who performs the deduction:
		// under concurrent duplicates only one claim matches the row, so the
		// stale read of inquiry.Status can never double-decrement.
		completing := false
		if input.Status != nil && *input.Status == enums.InquiryStatusCompleted {
			claimed, err := repo.ClaimCompletion(ctx, inquiry.ID)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "claim completion")
			}
			completing = claimed
		}

		if completing {
			product, err := s.products.WithTx(tx).FindProductByID(ctx, inquiry.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
			}

			pool, err := catalog.ResolveStockPool(product, inquiry.Variant)
			if err != nil {
				return err
			}
			variantKind = string(pool.Kind)

			if err := s.ledger.Decrement(ctx, tx, product, inquiry.Variant, inquiry.Quantity); err != nil {
				return err
			}
			outcome = "completed"
		}

		updates := map[string]any{}
		if input.Status != nil && *input.Status != enums.InquiryStatusCompleted {
			updates["status"] = *input.Status
		}
		if input.AdminNotes != nil {
			updates["admin_notes"] = *input.AdminNotes
		}
		if len(updates) == 0 {
			return nil
		}
		if err := repo.Update(ctx, inquiry.ID, updates); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update inquiry")
		}
		return nil
	})
	if err != nil {
		s.recordOutcome(err, start)
		return nil, err
	}

	if outcome == "completed" {
		s.metrics.IncCompleted(variantKind)
	}
	s.metrics.ObserveDuration(outcome, time.Since(start))

	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete inquiry")
	}
	return nil
}

func (s *service) recordOutcome(err error, start time.Time) {
	reason := "error"
	if typed := pkgerrors.As(err); typed != nil {
		switch typed.Code() {
		case pkgerrors.CodeInvalidVariant:
			reason = "invalid_variant"
		case pkgerrors.CodeInsufficientStock:
			reason = "insufficient_stock"
		case pkgerrors.CodeNotFound:
			reason = "not_found"
		case pkgerrors.CodeValidation:
			reason = "validation"
		}
	}
	s.metrics.IncRejected(reason)
	s.metrics.ObserveDuration("rejected", time.Since(start))
}
