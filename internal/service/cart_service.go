package service

import (
	"github.com/minimall-next/internal/models"
	"github.com/minimall-next/internal/repository"

	"github.com/shopspring/decimal"
)

// CartLine 购物车行（含小计）
type CartLine struct {
	Product  *models.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal models.Money    `json:"subtotal"`
}

// CartView 购物车视图
type CartView struct {
	Lines []CartLine   `json:"lines"`
	Total models.Money `json:"total"`
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// AddToCart 加购一件商品。商品必须存在；
// 已在购物车中的商品数量 +1，否则新建数量为 1 的行。
func (s *CartService) AddToCart(userID, productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.cartRepo.AddOne(userID, productID)
}

// ViewCart 获取用户购物车视图。先批量读取全部商品再逐行计算小计；
// 购物车引用了已不存在的商品时返回明确错误而不是崩溃。
func (s *CartService) ViewCart(userID uint) (*CartView, error) {
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	index := make(map[uint]*models.Product, len(products))
	for i := range products {
		index[products[i].ID] = &products[i]
	}

	view := &CartView{Lines: make([]CartLine, 0, len(items))}
	total := decimal.Zero
	for _, item := range items {
		product, ok := index[item.ProductID]
		if !ok {
			return nil, ErrProductNotFound
		}
		subtotal := product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
		view.Lines = append(view.Lines, CartLine{
			Product:  product,
			Quantity: item.Quantity,
			Subtotal: models.NewMoneyFromDecimal(subtotal),
		})
	}
	view.Total = models.NewMoneyFromDecimal(total)
	return view, nil
}
