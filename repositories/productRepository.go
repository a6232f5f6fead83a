package repositories

import (
	"errors"

	"github.com/jinzhu/gorm"

	"github.com/fortran01/loyalty-program-go/models"
)

type productRepository struct {
	db *gorm.DB
}

func (r *productRepository) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}
