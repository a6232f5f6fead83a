package models

import (
	"github.com/jinzhu/gorm"
)

// FallbackCategoryName is the category whose rules apply when a product's
// own category has none.
const FallbackCategoryName = "Default"

type Category struct {
	gorm.Model
	Name              string             `json:"name" gorm:"not null;unique"`
	Products          []Product          `json:"products" gorm:"foreignKey:CategoryID"`
	PointEarningRules []PointEarningRule `json:"-" gorm:"foreignKey:CategoryID"`
}
