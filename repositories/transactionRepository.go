package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/fortran01/loyalty-program-go/models"
)

type transactionRepository struct {
	db *gorm.DB
}

func (r *transactionRepository) Record(accountID, productID uint, pointsEarned int, at time.Time) error {
	transaction := models.PointTransaction{
		LoyaltyAccountID: accountID,
		ProductID:        productID,
		PointsEarned:     pointsEarned,
		TransactionDate:  at,
		Reference:        uuid.New().String(),
	}
	return r.db.Create(&transaction).Error
}
