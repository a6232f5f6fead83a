package database

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/fortran01/loyalty-program-go/models"
)

// Seed loads the sample data set: two customers with loyalty accounts, three
// categories (including the rule fallback), two products and three earning
// rules. The fallback category earns 1 point per dollar with an effectively
// unbounded window.
func Seed(db *gorm.DB) error {
	customers := []*models.Customer{
		{Name: "John Doe", Email: "john.doe@example.com"},
		{Name: "Jane Smith", Email: "jane.smith@example.com"},
	}
	for _, customer := range customers {
		if err := db.Create(customer).Error; err != nil {
			return err
		}
	}

	points := []int{100, 200}
	for i, customer := range customers {
		account := models.LoyaltyAccount{CustomerID: customer.ID, Points: points[i]}
		if err := db.Create(&account).Error; err != nil {
			return err
		}
	}

	var fallback models.Category
	if err := db.Where(models.Category{Name: models.FallbackCategoryName}).
		FirstOrCreate(&fallback).Error; err != nil {
		return err
	}

	electronics := models.Category{Name: "Electronics"}
	books := models.Category{Name: "Books"}
	for _, category := range []*models.Category{&electronics, &books} {
		if err := db.Create(category).Error; err != nil {
			return err
		}
	}

	products := []models.Product{
		{
			Name:       "Laptop",
			Price:      1200.00,
			CategoryID: &electronics.ID,
			ImageURL:   "https://upload.wikimedia.org/wikipedia/commons/e/e9/Apple-desk-laptop-macbook-pro_%2823699397893%29.jpg",
		},
		{
			Name:       "Science Fiction Book",
			Price:      15.99,
			CategoryID: &books.ID,
			ImageURL:   "https://upload.wikimedia.org/wikipedia/commons/thumb/e/eb/Eric_Frank_Russell_-_Die_Gro%C3%9Fe_Explosion_-_Cover.jpg/770px-Eric_Frank_Russell_-_Die_Gro%C3%9Fe_Explosion_-_Cover.jpg",
		},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}

	rules := []models.PointEarningRule{
		{
			CategoryID:      fallback.ID,
			PointsPerDollar: 1,
			StartDate:       time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			CategoryID:      electronics.ID,
			PointsPerDollar: 2,
			StartDate:       time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			CategoryID:      books.ID,
			PointsPerDollar: 1,
			StartDate:       time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}
	for i := range rules {
		if err := db.Create(&rules[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
