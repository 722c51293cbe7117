package inquiries

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftroots/craftroots-backend/internal/catalog"
	"github.com/craftroots/craftroots-backend/pkg/db/models"
	"github.com/craftroots/craftroots-backend/pkg/enums"
	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
	"github.com/craftroots/craftroots-backend/pkg/pagination"
)

func statusPtr(s enums.InquiryStatus) *enums.InquiryStatus { return &s }
func strPtr(s string) *string                              { return &s }

func TestCreateInquiry(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	inquiry := env.mustCreateInquiry(t, "Blue", 2)

	if inquiry.Status != enums.InquiryStatusPending {
		t.Fatalf("expected Pending, got %s", inquiry.Status)
	}
	if env.notifier.callCount() != 1 {
		t.Fatalf("expected one notification, got %d", env.notifier.callCount())
	}
	// creation never touches stock
	if got := env.optionQty(t, "Blue"); got != 3 {
		t.Fatalf("stock should be untouched on create, got %d", got)
	}
}

func TestCreateInquiryUnknownProduct(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, err := env.svc.Create(context.Background(), CreateInquiryInput{
		FullName:    "Asha",
		PhoneNumber: "9876543210",
		BuyOption:   enums.BuyOptionPersonal,
		Location:    "Surat",
		Quantity:    1,
		ProductID:   uuid.New(),
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if env.notifier.callCount() != 0 {
		t.Fatal("no notification expected on failed create")
	}
}

func TestCreateInquiryUnknownVariant(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, err := env.svc.Create(context.Background(), CreateInquiryInput{
		FullName:    "Asha",
		PhoneNumber: "9876543210",
		BuyOption:   enums.BuyOptionPersonal,
		Location:    "Surat",
		Quantity:    1,
		ProductID:   env.product.ID,
		Variant:     "Purple",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInvalidVariant {
		t.Fatalf("expected invalid variant, got %v", err)
	}
}

// Pending -> Completed with variant "Blue" draws from the option pool.
func TestCompleteInquiryDecrementsOptionPool(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	inquiry := env.mustCreateInquiry(t, "Blue", 2)

	updated, err := env.svc.Update(context.Background(), inquiry.ID, UpdateInquiryInput{
		Status: statusPtr(enums.InquiryStatusCompleted),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != enums.InquiryStatusCompleted {
		t.Fatalf("expected Completed, got %s", updated.Status)
	}
	if got := env.optionQty(t, "Blue"); got != 1 {
		t.Fatalf("expected Blue pool 1, got %d", got)
	}
	if got := env.reloadProduct(t).BaseQuantity; got != 5 {
		t.Fatalf("primary pool should be untouched, got %d", got)
	}
}

// An empty variant or the base color draws from the primary pool.
func TestCompleteInquiryDecrementsPrimaryPool(t *testing.T) {
	t.Parallel()

	for _, variant := range []string{"", "Red"} {
		variant := variant
		t.Run("variant="+variant, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t)
			inquiry := env.mustCreateInquiry(t, variant, 2)

			if _, err := env.svc.Update(context.Background(), inquiry.ID, UpdateInquiryInput{
				Status: statusPtr(enums.InquiryStatusCompleted),
			}); err != nil {
				t.Fatalf("update: %v", err)
			}
			if got := env.reloadProduct(t).BaseQuantity; got != 3 {
				t.Fatalf("expected primary pool 3, got %d", got)
			}
			if got := env.optionQty(t, "Blue"); got != 3 {
				t.Fatalf("option pool should be untouched, got %d", got)
			}
		})
	}
}

// Insufficient stock aborts the whole unit: no status write, no deduction.
func TestCompleteInquiryInsufficientStock(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	inquiry := env.mustCreateInquiry(t, "Blue", 10)

	_, err := env.svc.Update(context.Background(), inquiry.ID, UpdateInquiryInput{
		Status: statusPtr(enums.InquiryStatusCompleted),
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInsufficientStock {
		t.Fatalf("expected insufficient stock, got %v", err)
	}

	if got := env.optionQty(t, "Blue"); got != 3 {
		t.Fatalf("pool should be untouched, got %d", got)
	}
	reloaded, err := env.svc.Get(context.Background(), inquiry.ID)
	if err != nil {
		t.Fatalf("get inquiry: %v", err)
	}
	if reloaded.Status != enums.InquiryStatusPending {
		t.Fatalf("inquiry should remain Pending, got %s", reloaded.Status)
	}
}

// A variant that no longer resolves at completion time aborts the unit.
func TestCompleteInquiryInvalidVariantAtCompletion(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	inquiry := env.mustCreateInquiry(t, "Blue", 1)

	// the option was removed between creation and completion
	if err := env.conn.Delete(&models.ProductOption{}, "product_id = ?", env.product.ID).Error; err != nil {
		t.Fatalf("delete option: %v", err)
	}

	_, err := env.svc.Update(context.Background(), inquiry.ID, UpdateInquiryInput{
		Status: statusPtr(enums.InquiryStatusCompleted),
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInvalidVariant {
		t.Fatalf("expected invalid variant, got %v", err)
	}

	reloaded, err := env.svc.Get(context.Background(), inquiry.ID)
	if err != nil {
		t.Fatalf("get inquiry: %v", err)
	}
	if reloaded.Status != enums.InquiryStatusPending {
		t.Fatalf("inquiry should remain Pending, got %s", reloaded.Status)
	}
}

// Updating an already-Completed inquiry never deducts stock again.
func TestUpdateCompletedInquiryIsPlainUpdate(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	inquiry := env.mustCreateInquiry(t, "Blue", 2)

	if _, err := env.svc.Update(context.Background(), inquiry.ID, UpdateInquiryInput{
		Status: statusPtr(enums.InquiryStatusCompleted),
	}); err != nil {
		t.Fatalf("first completion: %v", err)
	}

	updated, err := env.svc.Update(context.Background(), inquiry.ID, UpdateInquiryInput{
		Status:     statusPtr(enums.InquiryStatusCompleted),
		AdminNotes: strPtr("shipped via courier"),
	})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if updated.AdminNotes != "shipped via courier" {
		t.Fatalf("admin notes not applied: %q", updated.AdminNotes)
	}
	if got := env.optionQty(t, "Blue"); got != 1 {
		t.Fatalf("stock deducted twice: got %d", got)
	}
}

// Leaving Completed does not restore stock.
func TestTransitionAwayFromCompletedKeepsDeduction(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	inquiry := env.mustCreateInquiry(t, "Blue", 2)

	if _, err := env.svc.Update(context.Background(), inquiry.ID, UpdateInquiryInput{
		Status: statusPtr(enums.InquiryStatusCompleted),
	}); err != nil {
		t.Fatalf("completion: %v", err)
	}
	if _, err := env.svc.Update(context.Background(), inquiry.ID, UpdateInquiryInput{
		Status: statusPtr(enums.InquiryStatusCancelled),
	}); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got := env.optionQty(t, "Blue"); got != 1 {
		t.Fatalf("stock should stay deducted, got %d", got)
	}
}

// Re-completing after a transition away deducts again (completion-transition
// detection is edge triggered, not once-ever).
func TestRecompletionDeductsAgain(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	inquiry := env.mustCreateInquiry(t, "", 1)

	for _, status := range []enums.InquiryStatus{
		enums.InquiryStatusCompleted,
		enums.InquiryStatusContacted,
		enums.InquiryStatusCompleted,
	} {
		if _, err := env.svc.Update(context.Background(), inquiry.ID, UpdateInquiryInput{
			Status: statusPtr(status),
		}); err != nil {
			t.Fatalf("transition to %s: %v", status, err)
		}
	}
	if got := env.reloadProduct(t).BaseQuantity; got != 3 {
		t.Fatalf("expected two deductions (5-1-1), got %d", got)
	}
}

// staleStatusRepo replays the read a duplicate admin request would have made
// before a concurrent completion committed.
type staleStatusRepo struct {
	Repository
	stale enums.InquiryStatus
}

func (r *staleStatusRepo) WithTx(tx *gorm.DB) Repository {
	return &staleStatusRepo{Repository: r.Repository.WithTx(tx), stale: r.stale}
}

func (r *staleStatusRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	inquiry, err := r.Repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	inquiry.Status = r.stale
	return inquiry, nil
}

// Two requests completing the same inquiry, the second of which loaded the
// row before the first committed, must deduct stock exactly once.
func TestDuplicateCompletionDecrementsOnce(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	inquiry := env.mustCreateInquiry(t, "Blue", 2)

	if _, err := env.svc.Update(context.Background(), inquiry.ID, UpdateInquiryInput{
		Status: statusPtr(enums.InquiryStatusCompleted),
	}); err != nil {
		t.Fatalf("first completion: %v", err)
	}

	staleRepo := &staleStatusRepo{Repository: NewRepository(env.conn), stale: enums.InquiryStatusPending}
	staleSvc, err := NewService(staleRepo, catalog.NewRepository(env.conn), catalog.NewStockLedger(), testTxRunner{db: env.conn}, nil, nil)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	if _, err := staleSvc.Update(context.Background(), inquiry.ID, UpdateInquiryInput{
		Status: statusPtr(enums.InquiryStatusCompleted),
	}); err != nil {
		t.Fatalf("duplicate completion: %v", err)
	}

	if got := env.optionQty(t, "Blue"); got != 1 {
		t.Fatalf("stock deducted twice: got %d", got)
	}
}

// failingNotesRepo errors on the field write that follows the deduction.
type failingNotesRepo struct {
	Repository
}

func (r *failingNotesRepo) WithTx(tx *gorm.DB) Repository {
	return &failingNotesRepo{Repository: r.Repository.WithTx(tx)}
}

func (r *failingNotesRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return errors.New("disk full")
}

// A write failure after a successful deduction aborts the whole unit: the
// inquiry stays Pending and the pool is restored.
func TestCompletionRollsBackWhenLaterWriteFails(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	inquiry := env.mustCreateInquiry(t, "Blue", 2)

	repo := &failingNotesRepo{Repository: NewRepository(env.conn)}
	svc, err := NewService(repo, catalog.NewRepository(env.conn), catalog.NewStockLedger(), testTxRunner{db: env.conn}, nil, nil)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	if _, err := svc.Update(context.Background(), inquiry.ID, UpdateInquiryInput{
		Status:     statusPtr(enums.InquiryStatusCompleted),
		AdminNotes: strPtr("ready to ship"),
	}); err == nil {
		t.Fatal("expected update to fail")
	}

	if got := env.optionQty(t, "Blue"); got != 3 {
		t.Fatalf("expected pool restored to 3, got %d", got)
	}
	reloaded, err := env.svc.Get(context.Background(), inquiry.ID)
	if err != nil {
		t.Fatalf("reload inquiry: %v", err)
	}
	if reloaded.Status != enums.InquiryStatusPending {
		t.Fatalf("expected status rolled back to Pending, got %s", reloaded.Status)
	}
}

func TestUpdateRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	inquiry := env.mustCreateInquiry(t, "", 1)

	_, err := env.svc.Update(context.Background(), inquiry.ID, UpdateInquiryInput{})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateInquiryNotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, err := env.svc.Update(context.Background(), uuid.New(), UpdateInquiryInput{
		Status: statusPtr(enums.InquiryStatusContacted),
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListInquiriesFilters(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	first := env.mustCreateInquiry(t, "", 1)
	env.mustCreateInquiry(t, "Blue", 1)

	if _, err := env.svc.Update(context.Background(), first.ID, UpdateInquiryInput{
		Status: statusPtr(enums.InquiryStatusContacted),
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	contacted := enums.InquiryStatusContacted
	items, total, err := env.svc.List(context.Background(), Filter{Status: &contacted}, pagination.Params{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].ID != first.ID {
		t.Fatalf("unexpected filtered result: total=%d items=%d", total, len(items))
	}

	items, total, err = env.svc.List(context.Background(), Filter{ProductID: &env.product.ID}, pagination.Params{Page: 1, Limit: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(items) != 1 {
		t.Fatalf("unexpected paginated result: total=%d items=%d", total, len(items))
	}
}

func TestDeleteInquiry(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	inquiry := env.mustCreateInquiry(t, "", 1)

	if err := env.svc.Delete(context.Background(), inquiry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err := env.svc.Get(context.Background(), inquiry.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	err = env.svc.Delete(context.Background(), inquiry.ID)
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for second delete, got %v", err)
	}
}
