package controllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/fortran01/loyalty-program-go/database"
	"github.com/fortran01/loyalty-program-go/logging"
	"github.com/fortran01/loyalty-program-go/metrics"
	"github.com/fortran01/loyalty-program-go/models"
	"github.com/fortran01/loyalty-program-go/services"
)

type LoyaltyController struct {
	loyalty *services.LoyaltyService
}

func NewLoyaltyController(loyalty *services.LoyaltyService) *LoyaltyController {
	return &LoyaltyController{loyalty: loyalty}
}

// Login authenticates a customer by id and issues the session cookie.
func (lc *LoyaltyController) Login(c *gin.Context) {
	var input struct {
		CustomerID string `json:"customer_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input"})
		return
	}

	customerID, err := strconv.ParseUint(input.CustomerID, 10, 32)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid customer ID"})
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, uint(customerID)).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid customer ID"})
		return
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"customer_id": customer.ID,
		"exp":         expirationTime.Unix(),
	})
	tokenString, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		logging.Logger.Error("token signing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not create token"})
		return
	}

	c.SetCookie("token", tokenString, 86400, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session cookie.
func (lc *LoyaltyController) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Checkout awards loyalty points for the submitted products. product_ids
// must be present and an array; an empty array is a valid zero-point call.
func (lc *LoyaltyController) Checkout(c *gin.Context) {
	customerID, exists := c.Get("customer_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		ProductIDs *[]uint `json:"product_ids"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductIDs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_ids must be an array"})
		return
	}

	start := time.Now()
	result, err := lc.loyalty.Checkout(customerID.(uint), *input.ProductIDs)
	metrics.CheckoutDurationMS.Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			metrics.CheckoutsTotal.WithLabelValues("account_not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "Loyalty account not found"})
			return
		}
		metrics.CheckoutsTotal.WithLabelValues("error").Inc()
		logging.Logger.Error("checkout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		return
	}

	metrics.CheckoutsTotal.WithLabelValues("ok").Inc()
	metrics.PointsEarnedTotal.Add(float64(result.TotalPointsEarned))
	c.JSON(http.StatusOK, result)
}

// VerifyAuth reports the authenticated customer and the session expiry.
func (lc *LoyaltyController) VerifyAuth(c *gin.Context) {
	customerID, exists := c.Get("customer_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, customerID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Customer no longer exists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer_id": customer.ID,
		"name":        customer.Name,
		"email":       customer.Email,
		"expires_in":  time.Until(time.Unix(int64(c.MustGet("exp").(float64)), 0)).Seconds(),
	})
}
