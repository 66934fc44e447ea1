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

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db)), db
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price int64, quantity int) *models.Product {
	t.Helper()
	now := time.Now()
	product := &models.Product{
		Name:      name,
		Price:     models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Quantity:  quantity,
		VendorID:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCartServiceAddToCartMergesQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createTestProduct(t, db, "widget", 10, 5)

	if err := svc.AddToCart(7, product.ID); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := svc.AddToCart(7, product.ID); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	var items []models.CartItem
	if err := db.Where("user_id = ?", 7).Find(&items).Error; err != nil {
		t.Fatalf("load cart failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("repeated add should merge into one row, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("quantity want 2 got %d", items[0].Quantity)
	}
}

func TestCartServiceAddToCartMissingProduct(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	if err := svc.AddToCart(7, 999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCartServiceViewCartTotals(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	widget := createTestProduct(t, db, "widget", 10, 5)
	gadget := createTestProduct(t, db, "gadget", 25, 5)

	for i := 0; i < 3; i++ {
		if err := svc.AddToCart(7, widget.ID); err != nil {
			t.Fatalf("add widget failed: %v", err)
		}
	}
	if err := svc.AddToCart(7, gadget.ID); err != nil {
		t.Fatalf("add gadget failed: %v", err)
	}

	view, err := svc.ViewCart(7)
	if err != nil {
		t.Fatalf("view cart failed: %v", err)
	}
	if len(view.Lines) != 2 {
		t.Fatalf("line count want 2 got %d", len(view.Lines))
	}
	if !view.Total.Decimal.Equal(decimal.NewFromInt(55)) {
		t.Fatalf("total want 55 got %s", view.Total.String())
	}
	for _, line := range view.Lines {
		if line.Product.ID == widget.ID && !line.Subtotal.Decimal.Equal(decimal.NewFromInt(30)) {
			t.Fatalf("widget subtotal want 30 got %s", line.Subtotal.String())
		}
	}
}

func TestCartServiceViewCartMissingProduct(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createTestProduct(t, db, "widget", 10, 5)

	if err := svc.AddToCart(7, product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.Delete(&models.Product{}, product.ID).Error; err != nil {
		t.Fatalf("delete product failed: %v", err)
	}

	if _, err := svc.ViewCart(7); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
