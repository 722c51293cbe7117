package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
	"github.com/craftroots/craftroots-backend/pkg/pagination"
)

func newTestService(t *testing.T) (Service, Repository, *testFixtures) {
	t.Helper()

	conn := openTestDB(t)
	repo := NewRepository(conn)
	svc, err := NewService(repo, testTxRunner{db: conn})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	category := mustCreateTestCategory(t, conn, "Sarees")
	sub := mustCreateTestSubcategory(t, conn, category.ID, "Silk")
	return svc, repo, &testFixtures{categoryID: category.ID, subcategoryID: sub.ID}
}

type testFixtures struct {
	categoryID    uuid.UUID
	subcategoryID uuid.UUID
}

func TestCreateProductWithOptions(t *testing.T) {
	t.Parallel()

	svc, _, fx := newTestService(t)
	red := "Red"

	product, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:          "Banarasi Saree",
		CategoryID:    fx.categoryID,
		SubcategoryID: fx.subcategoryID,
		Description:   "Gold zari work",
		Price:         decimal.NewFromInt(6200),
		ImageURL:      "https://cdn.example.com/banarasi.jpg",
		BaseQuantity:  4,
		BaseColor:     &red,
		Options: []ProductOptionInput{
			{Color: "Blue", Quantity: 3},
			{Color: "Green", Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	loaded, err := svc.GetProduct(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if len(loaded.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(loaded.Options))
	}
	if loaded.Options[0].Color != "Blue" || loaded.Options[0].Position != 0 {
		t.Fatalf("options not ordered by position: %+v", loaded.Options)
	}
}

func TestCreateProductRejectsDuplicateOptionColors(t *testing.T) {
	t.Parallel()

	svc, _, fx := newTestService(t)

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:          "Saree",
		CategoryID:    fx.categoryID,
		SubcategoryID: fx.subcategoryID,
		Description:   "d",
		Price:         decimal.NewFromInt(100),
		ImageURL:      "https://cdn.example.com/x.jpg",
		Options: []ProductOptionInput{
			{Color: "Blue", Quantity: 1},
			{Color: "Blue", Quantity: 2},
		},
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateProductUnknownCategory(t *testing.T) {
	t.Parallel()

	svc, _, fx := newTestService(t)

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:          "Saree",
		CategoryID:    uuid.New(),
		SubcategoryID: fx.subcategoryID,
		Description:   "d",
		Price:         decimal.NewFromInt(100),
		ImageURL:      "https://cdn.example.com/x.jpg",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateProductReplacesOptions(t *testing.T) {
	t.Parallel()

	svc, _, fx := newTestService(t)

	product, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:          "Saree",
		CategoryID:    fx.categoryID,
		SubcategoryID: fx.subcategoryID,
		Description:   "d",
		Price:         decimal.NewFromInt(100),
		ImageURL:      "https://cdn.example.com/x.jpg",
		Options:       []ProductOptionInput{{Color: "Blue", Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	newName := "Updated Saree"
	options := []ProductOptionInput{
		{Color: "Maroon", Quantity: 6},
	}
	updated, err := svc.UpdateProduct(context.Background(), product.ID, UpdateProductInput{
		Name:    &newName,
		Options: &options,
	})
	if err != nil {
		t.Fatalf("update product: %v", err)
	}
	if updated.Name != newName {
		t.Fatalf("expected renamed product, got %q", updated.Name)
	}
	if len(updated.Options) != 1 || updated.Options[0].Color != "Maroon" {
		t.Fatalf("expected replaced options, got %+v", updated.Options)
	}
}

// Replacing options without touching baseColor still must not let an option
// shadow the stored base color.
func TestUpdateProductRejectsOptionDuplicatingStoredBaseColor(t *testing.T) {
	t.Parallel()

	svc, _, fx := newTestService(t)
	red := "Red"

	product, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:          "Saree",
		CategoryID:    fx.categoryID,
		SubcategoryID: fx.subcategoryID,
		Description:   "d",
		Price:         decimal.NewFromInt(100),
		ImageURL:      "https://cdn.example.com/x.jpg",
		BaseQuantity:  4,
		BaseColor:     &red,
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	options := []ProductOptionInput{{Color: "Red", Quantity: 2}}
	_, err = svc.UpdateProduct(context.Background(), product.ID, UpdateProductInput{
		Options: &options,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	// a payload that also changes baseColor frees the old label
	green := "Green"
	updated, err := svc.UpdateProduct(context.Background(), product.ID, UpdateProductInput{
		BaseColor: &green,
		Options:   &options,
	})
	if err != nil {
		t.Fatalf("update with new base color: %v", err)
	}
	if len(updated.Options) != 1 || updated.Options[0].Color != "Red" {
		t.Fatalf("expected Red option kept, got %+v", updated.Options)
	}
}

func TestListProductsFiltersByCategory(t *testing.T) {
	t.Parallel()

	svc, _, fx := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateProduct(context.Background(), CreateProductInput{
			Name:          "Saree",
			CategoryID:    fx.categoryID,
			SubcategoryID: fx.subcategoryID,
			Description:   "d",
			Price:         decimal.NewFromInt(100),
			ImageURL:      "https://cdn.example.com/x.jpg",
		})
		if err != nil {
			t.Fatalf("create product: %v", err)
		}
	}

	products, total, err := svc.ListProducts(context.Background(), ProductFilter{CategoryID: &fx.categoryID}, pagination.Params{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products on first page, got %d", len(products))
	}

	other := uuid.New()
	_, total, err = svc.ListProducts(context.Background(), ProductFilter{CategoryID: &other}, pagination.Params{})
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected no products in unknown category, got %d", total)
	}
}

func TestCategoryNameConflict(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)

	if _, err := svc.CreateCategory(context.Background(), CreateCategoryInput{Name: "Dupattas", Description: "d", ImageURL: "u"}); err != nil {
		t.Fatalf("create category: %v", err)
	}
	_, err := svc.CreateCategory(context.Background(), CreateCategoryInput{Name: "Dupattas", Description: "d", ImageURL: "u"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestSubcategoryScopedUniqueness(t *testing.T) {
	t.Parallel()

	svc, _, fx := newTestService(t)

	other, err := svc.CreateCategory(context.Background(), CreateCategoryInput{Name: "Stoles", Description: "d", ImageURL: "u"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	// same name under a different parent is allowed
	if _, err := svc.CreateSubcategory(context.Background(), CreateSubcategoryInput{Name: "Silk", ParentCategoryID: other.ID, ImageURL: "u"}); err != nil {
		t.Fatalf("create subcategory under other parent: %v", err)
	}

	// same name under the same parent conflicts
	_, err = svc.CreateSubcategory(context.Background(), CreateSubcategoryInput{Name: "Silk", ParentCategoryID: fx.categoryID, ImageURL: "u"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestDeleteProductNotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	err := svc.DeleteProduct(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
