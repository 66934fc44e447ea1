package models

import "time"

// Product 商品表。库存仅在结算时扣减。
type Product struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Price     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Quantity  int       `gorm:"not null;default:0" json:"quantity"` // 库存数量
	VendorID  uint      `gorm:"not null;index" json:"vendor_id"`    // 所属商家
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Vendor *User `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
