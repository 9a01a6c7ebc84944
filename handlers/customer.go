package handlers

import (
	"net/http"

	"storefront-admin-api/config"
	"storefront-admin-api/models"

	"github.com/gin-gonic/gin"
)

type CustomerRequest struct {
	Name  string              `json:"name" binding:"required"`
	Phone string              `json:"phone"`
	Tier  models.CustomerTier `json:"tier"`
}

// AddCustomer creates a customer record in the caller's directory
func AddCustomer(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := models.Customer{
		BusinessID: business.ID,
		Name:       req.Name,
		Phone:      req.Phone,
		Tier:       req.Tier,
	}
	if customer.Tier == "" {
		customer.Tier = models.TierRegular
	}
	if err := config.DB.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Customer created", "customer": customer})
}

// ListCustomers returns the caller's customer directory
func ListCustomers(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}

	var customers []models.Customer
	query := config.DB.Where("business_id = ?", business.ID)
	if tier := c.Query("tier"); tier != "" {
		query = query.Where("tier = ?", tier)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	query.Order("created_at desc").Find(&customers)

	c.JSON(http.StatusOK, gin.H{"count": len(customers), "customers": customers})
}

// UpdateCustomer applies partial updates to a customer record
func UpdateCustomer(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, c.Param("customerId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	if customer.BusinessID != business.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This customer does not belong to your business"})
		return
	}

	var req struct {
		Name  *string              `json:"name"`
		Phone *string              `json:"phone"`
		Tier  *models.CustomerTier `json:"tier"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Tier != nil {
		customer.Tier = *req.Tier
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer updated", "customer": customer})
}
