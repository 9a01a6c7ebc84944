package handlers

import (
	"net/http"

	"storefront-admin-api/config"
	"storefront-admin-api/models"

	"github.com/gin-gonic/gin"
)

type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock" binding:"gte=0"`
	IsAvailable *bool   `json:"is_available"`
}

// AddProduct creates a product in the caller's catalog
func AddProduct(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.Product{
		BusinessID:  business.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		IsAvailable: req.IsAvailable == nil || *req.IsAvailable,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product": product})
}

// ListProducts returns the caller's catalog with optional filters
func ListProducts(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}

	var products []models.Product
	query := config.DB.Where("business_id = ?", business.ID)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if available := c.Query("available"); available == "true" {
		query = query.Where("is_available = ?", true)
	}
	query.Find(&products)

	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

// UpdateProduct applies partial updates to a product
func UpdateProduct(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}

	product, ok := productForBusiness(c, business.ID)
	if !ok {
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Category    *string  `json:"category"`
		Stock       *int     `json:"stock"`
		IsAvailable *bool    `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}

	if err := config.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
}

// DeleteProduct removes a product from the catalog
func DeleteProduct(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}

	product, ok := productForBusiness(c, business.ID)
	if !ok {
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted", "product_id": product.ID})
}

func productForBusiness(c *gin.Context, businessID uint) (models.Product, bool) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("productId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return models.Product{}, false
	}
	if product.BusinessID != businessID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This product does not belong to your business"})
		return models.Product{}, false
	}
	return product, true
}
