package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username" binding:"required"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email" binding:"required,email"`
	FullName  *string   `gorm:"size:100" json:"fullName"`
	Phone     *string   `gorm:"size:30" json:"phone"`
	Address   *string   `json:"address"`
	City      *string   `gorm:"size:100" json:"city"`
	Country   *string   `gorm:"size:100" json:"country"`
	Status    *string   `gorm:"size:20" json:"status"` // ACTIVE / INACTIVE
	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
