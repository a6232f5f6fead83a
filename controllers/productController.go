package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fortran01/loyalty-program-go/database"
	"github.com/fortran01/loyalty-program-go/models"
)

// GetProducts lists the catalog with categories preloaded.
func GetProducts(c *gin.Context) {
	var products []models.Product
	if err := database.DB.Preload("Category").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}
