package service

import (
	"time"

	"github.com/minimall-next/internal/constants"
	"github.com/minimall-next/internal/logger"
	"github.com/minimall-next/internal/models"
	"github.com/minimall-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutService 结算服务：购物车 → 订单 + 订单项 + 库存扣减 + 清空购物车，
// 全部在一个数据库事务内完成。
type CheckoutService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, cartRepo repository.CartRepository) *CheckoutService {
	return &CheckoutService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
	}
}

// Checkout 执行结算。空购物车直接拒绝；
// 任一商品缺失或库存不足时整体回滚，订单不落库、购物车保持原样。
func (s *CheckoutService) Checkout(userID uint) (*models.Order, error) {
	var order *models.Order

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		lines, err := cartRepo.ListByUser(userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrCartEmpty
		}

		// 事务写入阶段之前批量读取全部商品
		ids := make([]uint, 0, len(lines))
		for _, line := range lines {
			ids = append(ids, line.ProductID)
		}
		products, err := productRepo.GetByIDs(ids)
		if err != nil {
			return err
		}
		index := make(map[uint]*models.Product, len(products))
		for i := range products {
			index[products[i].ID] = &products[i]
		}

		now := time.Now()
		order = &models.Order{
			UserID:     userID,
			TotalPrice: models.NewMoneyFromDecimal(decimal.Zero),
			Status:     constants.OrderStatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			product, ok := index[line.ProductID]
			if !ok {
				return ErrProductNotFound
			}

			// 条件扣减：剩余库存不足时不更新任何行，整单失败
			updated, err := productRepo.DecrementStock(line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !updated {
				return ErrInsufficientStock
			}

			subtotal := product.Price.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(subtotal)
			orderItems = append(orderItems, models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
				CreatedAt: now,
			})
		}

		// 订单先落库获得主键，订单项随后插入，最后回写总额
		if err := orderRepo.Create(order, orderItems); err != nil {
			return err
		}
		if err := orderRepo.UpdateTotal(order.ID, models.NewMoneyFromDecimal(total)); err != nil {
			return err
		}
		order.TotalPrice = models.NewMoneyFromDecimal(total)
		order.Items = orderItems

		return cartRepo.ClearByUser(userID)
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("checkout_completed",
		"user_id", userID,
		"order_id", order.ID,
		"total", order.TotalPrice.String(),
		"items", len(order.Items),
	)
	return order, nil
}
