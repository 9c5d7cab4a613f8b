package models

import "time"

// Order statuses used by the demo data. The status column accepts any string;
// this is not a validated state machine.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

type Order struct {
	ID              uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber     string      `gorm:"uniqueIndex;size:50;not null" json:"orderNumber"`
	UserID          uint        `gorm:"not null" json:"userId" binding:"required"`
	TotalAmount     float64     `gorm:"not null" json:"totalAmount" binding:"required,gt=0"`
	Status          string      `gorm:"size:30" json:"status"`
	PaymentMethod   *string     `gorm:"size:50" json:"paymentMethod"`
	ShippingAddress *string     `json:"shippingAddress"`
	OrderDate       time.Time   `json:"orderDate"`
	UpdatedAt       time.Time   `gorm:"autoUpdateTime:false" json:"updatedAt"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items" binding:"omitempty,dive"`
}

// OrderItem lines are owned by their order and deleted with it.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index" json:"orderId"`
	ProductID uint    `gorm:"not null" json:"productId" binding:"required"`
	Quantity  int     `gorm:"not null" json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `gorm:"not null" json:"unitPrice" binding:"required,gt=0"`
	Subtotal  float64 `gorm:"not null" json:"subtotal" binding:"required,gt=0"`
}
