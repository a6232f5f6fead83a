package models

import "github.com/jinzhu/gorm"

// LoyaltyAccount holds a customer's running point balance. The relation is
// one-to-many in the schema but only one account per customer is ever used,
// so CustomerID carries a unique index to enforce that explicitly.
type LoyaltyAccount struct {
	gorm.Model
	CustomerID        uint                `json:"customer_id" gorm:"not null;unique_index"`
	Customer          *Customer           `json:"-" gorm:"foreignKey:CustomerID"`
	Points            int                 `json:"points" gorm:"not null;default:0"`
	PointTransactions []*PointTransaction `json:"-" gorm:"foreignKey:LoyaltyAccountID"`
}
