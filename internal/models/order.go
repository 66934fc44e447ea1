package models

import "time"

// Order 订单表。结算时创建，状态仅管理员可变更，
// created_at 创建后不可变。
type Order struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	TotalPrice Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`
	Status     string    `gorm:"type:varchar(20);index;not null;default:'Pending'" json:"status"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
