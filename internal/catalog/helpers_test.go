package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/craftroots/craftroots-backend/pkg/db/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:catalog_" + uuid.NewString() + "?mode=memory&cache=shared"
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

func mustCreateTestCategory(t *testing.T, tx *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{
		ID:          uuid.New(),
		Name:        name,
		Description: "Handwoven " + name,
		ImageURL:    "https://cdn.example.com/" + name + ".jpg",
	}
	if err := tx.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return category
}

func mustCreateTestSubcategory(t *testing.T, tx *gorm.DB, parentID uuid.UUID, name string) *models.Subcategory {
	t.Helper()
	subcategory := &models.Subcategory{
		ID:               uuid.New(),
		Name:             name,
		ParentCategoryID: parentID,
		ImageURL:         "https://cdn.example.com/" + name + ".jpg",
	}
	if err := tx.Create(subcategory).Error; err != nil {
		t.Fatalf("create subcategory: %v", err)
	}
	return subcategory
}

func mustCreateTestProduct(t *testing.T, tx *gorm.DB, categoryID, subcategoryID uuid.UUID, baseColor string, baseQty int, options []models.ProductOption) *models.Product {
	t.Helper()
	var colorPtr *string
	if baseColor != "" {
		colorPtr = &baseColor
	}
	for i := range options {
		if options[i].ID == uuid.Nil {
			options[i].ID = uuid.New()
		}
	}
	product := &models.Product{
		ID:            uuid.New(),
		Name:          "Kanchipuram Silk Saree",
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Description:   "Pure silk with zari border",
		Price:         decimal.NewFromInt(4500),
		ImageURL:      "https://cdn.example.com/saree.jpg",
		BaseQuantity:  baseQty,
		BaseColor:     colorPtr,
		Options:       options,
	}
	if err := tx.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}
