package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/minimall-next/internal/models"
	"github.com/minimall-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCatalogServiceTest(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:catalog_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewCatalogService(repository.NewProductRepository(db)), db
}

func TestCatalogServiceAddProduct(t *testing.T) {
	svc, _ := setupCatalogServiceTest(t)

	product, err := svc.AddProduct(AddProductInput{
		VendorID: 3,
		Name:     "  widget  ",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromFloat(9.99)),
		Quantity: 4,
	})
	if err != nil {
		t.Fatalf("add product failed: %v", err)
	}
	if product.ID == 0 {
		t.Fatalf("product id should be assigned")
	}
	if product.Name != "widget" {
		t.Fatalf("name should be trimmed, got %q", product.Name)
	}
	if product.VendorID != 3 {
		t.Fatalf("vendor id want 3 got %d", product.VendorID)
	}
}

func TestCatalogServiceAddProductValidation(t *testing.T) {
	svc, _ := setupCatalogServiceTest(t)

	if _, err := svc.AddProduct(AddProductInput{VendorID: 3, Name: "  "}); !errors.Is(err, ErrProductNameRequired) {
		t.Fatalf("expected ErrProductNameRequired, got %v", err)
	}
	if _, err := svc.AddProduct(AddProductInput{
		VendorID: 3,
		Name:     "widget",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(-1)),
	}); !errors.Is(err, ErrPriceNegative) {
		t.Fatalf("expected ErrPriceNegative, got %v", err)
	}
	if _, err := svc.AddProduct(AddProductInput{
		VendorID: 3,
		Name:     "widget",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(1)),
		Quantity: -2,
	}); !errors.Is(err, ErrQuantityNegative) {
		t.Fatalf("expected ErrQuantityNegative, got %v", err)
	}
}

func TestCatalogServiceListProducts(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	createTestProduct(t, db, "widget", 10, 5)
	createTestProduct(t, db, "gadget", 25, 3)

	products, err := svc.ListProducts()
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("product count want 2 got %d", len(products))
	}
}
