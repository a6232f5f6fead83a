package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// PointEarningRule converts spend in a category to points. Several rules may
// exist per category; resolution picks the most recently started one. The
// validity window is stored but not consulted when resolving.
type PointEarningRule struct {
	gorm.Model
	CategoryID      uint      `json:"category_id" gorm:"not null;index"`
	Category        *Category `json:"-" gorm:"foreignKey:CategoryID"`
	PointsPerDollar int       `json:"points_per_dollar" gorm:"not null"`
	StartDate       time.Time `json:"start_date" gorm:"not null;index"`
	EndDate         time.Time `json:"end_date" gorm:"not null"`
}
