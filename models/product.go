package models

import (
	"github.com/jinzhu/gorm"
)

// Product belongs to at most one category. CategoryID is nullable: a product
// with no category is a legal row and a distinct checkout failure case.
type Product struct {
	gorm.Model
	Name       string    `json:"name" gorm:"not null"`
	Price      float64   `json:"price" binding:"required" gorm:"type:decimal(10,2)"`
	ImageURL   string    `json:"image_url"`
	CategoryID *uint     `json:"category_id" gorm:"index"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
