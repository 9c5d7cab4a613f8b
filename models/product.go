package models

import "time"

// Product is a catalog entry. Descriptive attributes are pointers so a JSON
// null is stored as NULL and round-trips back as null.
type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name" binding:"required"`
	Description *string   `gorm:"size:500" json:"description"`
	Price       float64   `gorm:"not null" json:"price" binding:"required,gt=0"`
	Category    *string   `gorm:"size:100" json:"category"`
	Stock       *int      `json:"stock"`
	SKU         *string   `gorm:"column:sku;uniqueIndex;size:50" json:"sku"`
	Brand       *string   `gorm:"size:100" json:"brand"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
