package models

import "time"

// OrderItem 订单项表。下单瞬间购物车行的不可变快照，
// 单价取下单时刻的商品价格，与后续商品变更解耦。
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	OrderID   uint      `gorm:"index;not null" json:"order_id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
