package service

import (
	"strings"
	"time"

	"github.com/minimall-next/internal/models"
	"github.com/minimall-next/internal/repository"
)

// CatalogService 商品目录服务
type CatalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService 创建目录服务
func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// AddProductInput 创建商品输入
type AddProductInput struct {
	VendorID uint
	Name     string
	Price    models.Money
	Quantity int
}

// AddProduct 创建商品。价格与库存必须非负。
func (s *CatalogService) AddProduct(input AddProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if input.Price.Decimal.IsNegative() {
		return nil, ErrPriceNegative
	}
	if input.Quantity < 0 {
		return nil, ErrQuantityNegative
	}

	now := time.Now()
	product := &models.Product{
		Name:      name,
		Price:     input.Price,
		Quantity:  input.Quantity,
		VendorID:  input.VendorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts 获取全部商品
func (s *CatalogService) ListProducts() ([]models.Product, error) {
	return s.productRepo.ListAll()
}
