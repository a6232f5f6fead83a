package models

import (
	"github.com/jinzhu/gorm"
)

type Customer struct {
	gorm.Model
	Name            string            `json:"name" binding:"required" gorm:"not null"`
	Email           string            `json:"email" binding:"required" gorm:"unique;not null"`
	LoyaltyAccounts []*LoyaltyAccount `json:"-" gorm:"foreignKey:CustomerID"`
}
