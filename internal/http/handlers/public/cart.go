package public

import (
	"strconv"

	"github.com/minimall-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ViewCart 查看当前用户购物车
func (h *Handler) ViewCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	view, err := h.CartService.ViewCart(userID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "load cart failed")
		return
	}
	response.Success(c, view)
}

// AddToCart 加购一件商品，重复加购累加数量
func (h *Handler) AddToCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "product id invalid", nil)
		return
	}

	if err := h.CartService.AddToCart(userID, uint(productID)); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "add to cart failed")
		return
	}
	response.SuccessWithMsg(c, "added to cart", gin.H{"product_id": productID})
}
