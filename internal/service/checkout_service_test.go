package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/minimall-next/internal/constants"
	"github.com/minimall-next/internal/models"
	"github.com/minimall-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCheckoutServiceTest(t *testing.T) (*CheckoutService, *CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:checkout_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	checkout := NewCheckoutService(orderRepo, productRepo, cartRepo)
	cart := NewCartService(cartRepo, productRepo)
	return checkout, cart, db
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	checkout, cart, db := setupCheckoutServiceTest(t)
	widget := createTestProduct(t, db, "widget", 10, 5)
	gadget := createTestProduct(t, db, "gadget", 25, 3)

	for i := 0; i < 2; i++ {
		if err := cart.AddToCart(7, widget.ID); err != nil {
			t.Fatalf("add widget failed: %v", err)
		}
	}
	if err := cart.AddToCart(7, gadget.ID); err != nil {
		t.Fatalf("add gadget failed: %v", err)
	}

	order, err := checkout.Checkout(7)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.ID == 0 {
		t.Fatalf("order id should be assigned")
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("order status want Pending got %s", order.Status)
	}
	if !order.TotalPrice.Decimal.Equal(decimal.NewFromInt(45)) {
		t.Fatalf("order total want 45 got %s", order.TotalPrice.String())
	}

	stored, err := repository.NewOrderRepository(db).GetByID(order.ID)
	if err != nil || stored == nil {
		t.Fatalf("load order failed: %v", err)
	}
	if len(stored.Items) != 2 {
		t.Fatalf("order items want 2 got %d", len(stored.Items))
	}
	for _, item := range stored.Items {
		switch item.ProductID {
		case widget.ID:
			if item.Quantity != 2 || !item.UnitPrice.Decimal.Equal(decimal.NewFromInt(10)) {
				t.Fatalf("unexpected widget item: %+v", item)
			}
		case gadget.ID:
			if item.Quantity != 1 || !item.UnitPrice.Decimal.Equal(decimal.NewFromInt(25)) {
				t.Fatalf("unexpected gadget item: %+v", item)
			}
		default:
			t.Fatalf("unexpected order item product %d", item.ProductID)
		}
	}
	if !stored.TotalPrice.Decimal.Equal(decimal.NewFromInt(45)) {
		t.Fatalf("stored total want 45 got %s", stored.TotalPrice.String())
	}

	var widgetAfter models.Product
	if err := db.First(&widgetAfter, widget.ID).Error; err != nil {
		t.Fatalf("load widget failed: %v", err)
	}
	if widgetAfter.Quantity != 3 {
		t.Fatalf("widget stock want 3 got %d", widgetAfter.Quantity)
	}

	var remaining int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", 7).Count(&remaining).Error; err != nil {
		t.Fatalf("count cart failed: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("cart should be emptied, %d rows left", remaining)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	checkout, _, _ := setupCheckoutServiceTest(t)

	if _, err := checkout.Checkout(7); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	checkout, cart, db := setupCheckoutServiceTest(t)
	widget := createTestProduct(t, db, "widget", 10, 1)

	for i := 0; i < 2; i++ {
		if err := cart.AddToCart(7, widget.ID); err != nil {
			t.Fatalf("add widget failed: %v", err)
		}
	}

	if _, err := checkout.Checkout(7); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	var orders int64
	if err := db.Model(&models.Order{}).Count(&orders).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orders != 0 {
		t.Fatalf("failed checkout should not persist orders, got %d", orders)
	}

	var widgetAfter models.Product
	if err := db.First(&widgetAfter, widget.ID).Error; err != nil {
		t.Fatalf("load widget failed: %v", err)
	}
	if widgetAfter.Quantity != 1 {
		t.Fatalf("stock should be untouched after rollback, got %d", widgetAfter.Quantity)
	}

	var cartRows int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", 7).Count(&cartRows).Error; err != nil {
		t.Fatalf("count cart failed: %v", err)
	}
	if cartRows != 1 {
		t.Fatalf("cart should be preserved after rollback, got %d rows", cartRows)
	}
}

func TestCheckoutMissingProductRollsBack(t *testing.T) {
	checkout, cart, db := setupCheckoutServiceTest(t)
	widget := createTestProduct(t, db, "widget", 10, 5)

	if err := cart.AddToCart(7, widget.ID); err != nil {
		t.Fatalf("add widget failed: %v", err)
	}
	if err := db.Delete(&models.Product{}, widget.ID).Error; err != nil {
		t.Fatalf("delete product failed: %v", err)
	}

	if _, err := checkout.Checkout(7); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	var orders int64
	if err := db.Model(&models.Order{}).Count(&orders).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orders != 0 {
		t.Fatalf("failed checkout should not persist orders, got %d", orders)
	}
	var cartRows int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", 7).Count(&cartRows).Error; err != nil {
		t.Fatalf("count cart failed: %v", err)
	}
	if cartRows != 1 {
		t.Fatalf("cart should be preserved after rollback, got %d rows", cartRows)
	}
}

func TestCheckoutOversellPrevented(t *testing.T) {
	checkout, cart, db := setupCheckoutServiceTest(t)
	widget := createTestProduct(t, db, "widget", 10, 1)

	if err := cart.AddToCart(7, widget.ID); err != nil {
		t.Fatalf("add for first user failed: %v", err)
	}
	if err := cart.AddToCart(8, widget.ID); err != nil {
		t.Fatalf("add for second user failed: %v", err)
	}

	if _, err := checkout.Checkout(7); err != nil {
		t.Fatalf("first checkout failed: %v", err)
	}
	if _, err := checkout.Checkout(8); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("second checkout should hit ErrInsufficientStock, got %v", err)
	}

	var widgetAfter models.Product
	if err := db.First(&widgetAfter, widget.ID).Error; err != nil {
		t.Fatalf("load widget failed: %v", err)
	}
	if widgetAfter.Quantity != 0 {
		t.Fatalf("stock want 0 got %d", widgetAfter.Quantity)
	}
	var orders int64
	if err := db.Model(&models.Order{}).Count(&orders).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orders != 1 {
		t.Fatalf("exactly one order should exist, got %d", orders)
	}
}
