package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// PointTransaction is one row in the append-only points ledger. Rows are
// never updated or deleted after creation.
type PointTransaction struct {
	gorm.Model
	LoyaltyAccountID uint            `json:"loyalty_account_id" gorm:"not null;index"`
	LoyaltyAccount   *LoyaltyAccount `json:"-" gorm:"foreignKey:LoyaltyAccountID"`
	ProductID        uint            `json:"product_id" gorm:"not null;index"`
	Product          *Product        `json:"-" gorm:"foreignKey:ProductID"`
	PointsEarned     int             `json:"points_earned" gorm:"not null"`
	TransactionDate  time.Time       `json:"transaction_date" gorm:"not null"`
	Reference        string          `json:"reference" gorm:"not null;unique_index"`
}
