package inquiries

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/craftroots/craftroots-backend/internal/catalog"
	"github.com/craftroots/craftroots-backend/pkg/db/models"
	"github.com/craftroots/craftroots-backend/pkg/enums"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:inquiries_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(
		&models.Category{},
		&models.Subcategory{},
		&models.Product{},
		&models.ProductOption{},
		&models.Inquiry{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return conn
}

type testTxRunner struct {
	db *gorm.DB
}

func (r testTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []uuid.UUID
}

func (f *fakeNotifier) InquiryCreated(_ context.Context, inquiry *models.Inquiry, _ *models.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, inquiry.ID)
}

func (f *fakeNotifier) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type testEnv struct {
	conn     *gorm.DB
	svc      Service
	notifier *fakeNotifier
	product  *models.Product
}

// seeds a product with baseColor Red (qty 5) and a Blue option (qty 3)
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := openTestDB(t)

	category := &models.Category{ID: uuid.New(), Name: "Sarees", Description: "d", ImageURL: "u"}
	if err := conn.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	sub := &models.Subcategory{ID: uuid.New(), Name: "Silk", ParentCategoryID: category.ID, ImageURL: "u"}
	if err := conn.Create(sub).Error; err != nil {
		t.Fatalf("create subcategory: %v", err)
	}

	red := "Red"
	product := &models.Product{
		ID:            uuid.New(),
		Name:          "Kanchipuram Silk Saree",
		CategoryID:    category.ID,
		SubcategoryID: sub.ID,
		Description:   "Pure silk",
		Price:         decimal.NewFromInt(4500),
		ImageURL:      "u",
		BaseQuantity:  5,
		BaseColor:     &red,
		Options: []models.ProductOption{
			{ID: uuid.New(), Color: "Blue", Quantity: 3},
		},
	}
	if err := conn.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}

	notifier := &fakeNotifier{}
	svc, err := NewService(
		NewRepository(conn),
		catalog.NewRepository(conn),
		catalog.NewStockLedger(),
		testTxRunner{db: conn},
		notifier,
		nil,
	)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	return &testEnv{conn: conn, svc: svc, notifier: notifier, product: product}
}

func (e *testEnv) mustCreateInquiry(t *testing.T, variant string, qty int) *models.Inquiry {
	t.Helper()
	inquiry, err := e.svc.Create(context.Background(), CreateInquiryInput{
		FullName:    "Asha Patel",
		PhoneNumber: "9876543210",
		BuyOption:   enums.BuyOptionPersonal,
		Location:    "Ahmedabad",
		Quantity:    qty,
		ProductID:   e.product.ID,
		Variant:     variant,
	})
	if err != nil {
		t.Fatalf("create inquiry: %v", err)
	}
	return inquiry
}

func (e *testEnv) reloadProduct(t *testing.T) *models.Product {
	t.Helper()
	var product models.Product
	if err := e.conn.Preload("Options").First(&product, "id = ?", e.product.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	return &product
}

func (e *testEnv) optionQty(t *testing.T, color string) int {
	t.Helper()
	for _, opt := range e.reloadProduct(t).Options {
		if opt.Color == color {
			return opt.Quantity
		}
	}
	t.Fatalf("option %q not found", color)
	return 0
}
