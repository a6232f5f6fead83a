package repositories

import (
	"errors"

	"github.com/jinzhu/gorm"

	"github.com/fortran01/loyalty-program-go/models"
)

type ruleRepository struct {
	db *gorm.DB
}

// FindLatestForCategory returns the most recently started rule for the
// category. The validity window is deliberately not part of the query; an
// expired rule still wins if it started last.
func (r *ruleRepository) FindLatestForCategory(categoryID uint) (*models.PointEarningRule, error) {
	var rule models.PointEarningRule
	err := r.db.Where("category_id = ?", categoryID).
		Order("start_date DESC").
		First(&rule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}
