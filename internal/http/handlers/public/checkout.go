package public

import (
	"github.com/minimall-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Checkout 结算当前用户购物车
func (h *Handler) Checkout(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	order, err := h.CheckoutService.Checkout(userID)
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "checkout failed")
		return
	}

	response.SuccessWithMsg(c, "order placed", order)
}
