package admin

import (
	"errors"
	"strconv"

	"github.com/minimall-next/internal/http/response"
	"github.com/minimall-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders 查看全部订单
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.AdminService.ListOrders()
	if err != nil {
		respondError(c, response.CodeInternal, "load orders failed", err)
		return
	}
	response.Success(c, gin.H{"orders": orders})
}

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus 更新订单状态，状态取值限定在固定集合内
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "order id invalid", nil)
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	order, err := h.AdminService.UpdateOrderStatus(uint(orderID), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderStatusInvalid):
			respondError(c, response.CodeBadRequest, "order status invalid", nil)
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		default:
			respondError(c, response.CodeInternal, "update order failed", err)
		}
		return
	}

	response.SuccessWithMsg(c, "order updated", order)
}
