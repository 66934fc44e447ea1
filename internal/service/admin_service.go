package service

import (
	"strings"

	"github.com/minimall-next/internal/constants"
	"github.com/minimall-next/internal/logger"
	"github.com/minimall-next/internal/models"
	"github.com/minimall-next/internal/repository"
)

// AdminService 管理端服务
type AdminService struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
}

// NewAdminService 创建管理端服务
func NewAdminService(userRepo repository.UserRepository, orderRepo repository.OrderRepository) *AdminService {
	return &AdminService{userRepo: userRepo, orderRepo: orderRepo}
}

// ListUsers 获取全部用户
func (s *AdminService) ListUsers() ([]models.User, error) {
	return s.userRepo.ListAll()
}

// ListOrders 获取全部订单
func (s *AdminService) ListOrders() ([]models.Order, error) {
	return s.orderRepo.ListAll()
}

// UpdateOrderStatus 更新订单状态。状态必须在闭合集合内，
// 不接受任意字符串。
func (s *AdminService) UpdateOrderStatus(orderID uint, status string) (*models.Order, error) {
	status = strings.TrimSpace(status)
	if !constants.OrderStatusValid(status) {
		return nil, ErrOrderStatusInvalid
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if err := s.orderRepo.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}
	order.Status = status

	logger.Infow("order_status_updated", "order_id", orderID, "status", status)
	return order, nil
}
