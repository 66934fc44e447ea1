package public

import (
	"github.com/minimall-next/internal/http/response"
	"github.com/minimall-next/internal/models"
	"github.com/minimall-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts 商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.CatalogService.ListProducts()
	if err != nil {
		respondError(c, response.CodeInternal, "load products failed", err)
		return
	}
	response.Success(c, gin.H{"products": products})
}

// AddProductPage 上架页描述，供前端渲染表单
func (h *Handler) AddProductPage(c *gin.Context) {
	response.Success(c, gin.H{
		"fields": []string{"name", "price", "quantity"},
	})
}

// AddProductRequest 商家上架商品请求
type AddProductRequest struct {
	Name     string       `json:"name" binding:"required"`
	Price    models.Money `json:"price"`
	Quantity int          `json:"quantity"`
}

// AddProduct 商家上架商品，商品归属当前登录商家
func (h *Handler) AddProduct(c *gin.Context) {
	vendorID, ok := getUserID(c)
	if !ok {
		return
	}

	var req AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	product, err := h.CatalogService.AddProduct(service.AddProductInput{
		VendorID: vendorID,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		respondWithMappedError(c, err, addProductErrorRules, response.CodeInternal, "add product failed")
		return
	}

	response.SuccessWithMsg(c, "product added", product)
}
