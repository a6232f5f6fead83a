package repositories

import (
	"errors"

	"github.com/jinzhu/gorm"

	"github.com/fortran01/loyalty-program-go/models"
)

type accountRepository struct {
	db *gorm.DB
}

func (r *accountRepository) FindByCustomerID(customerID uint) (*models.LoyaltyAccount, error) {
	var account models.LoyaltyAccount
	err := r.db.Where("customer_id = ?", customerID).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// AddPoints increments the balance in the database rather than saving a
// loaded row, so two concurrent checkouts cannot lose an update.
func (r *accountRepository) AddPoints(accountID uint, delta int) error {
	return r.db.Model(&models.LoyaltyAccount{}).
		Where("id = ?", accountID).
		Update("points", gorm.Expr("points + ?", delta)).Error
}
