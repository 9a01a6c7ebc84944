package handlers

import (
	"net/http"

	"storefront-admin-api/config"
	"storefront-admin-api/middleware"
	"storefront-admin-api/models"

	"github.com/gin-gonic/gin"
)

type CreateBusinessRequest struct {
	Name         string              `json:"name" binding:"required"`
	Type         models.BusinessType `json:"type" binding:"required"`
	Language     string              `json:"language"`
	Currency     string              `json:"currency"`
	TimeFormat   models.TimeFormat   `json:"time_format"`
	LocationName string              `json:"location_name"`
	Address      string              `json:"address"`
	Phone        string              `json:"phone"`
}

// CreateBusiness sets up the caller's storefront (one per owner)
func CreateBusiness(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var existing models.Business
	if result := config.DB.Where("owner_id = ?", ownerID).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You already have a business configured"})
		return
	}

	var req CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	business := models.Business{
		OwnerID:      ownerID,
		Name:         req.Name,
		Type:         req.Type,
		Language:     defaultString(req.Language, "en"),
		Currency:     defaultString(req.Currency, "USD"),
		TimeFormat:   req.TimeFormat,
		LocationName: req.LocationName,
		Address:      req.Address,
		Phone:        req.Phone,
		Notifications: models.NotificationSettings{
			Enabled: true,
		},
	}
	if business.TimeFormat == "" {
		business.TimeFormat = models.TimeFormat12h
	}
	if err := config.DB.Create(&business).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create business"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Business created successfully", "business": business})
}

// GetMyBusiness returns the caller's business profile
func GetMyBusiness(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"business": business})
}

type UpdateBusinessRequest struct {
	Name                        *string              `json:"name"`
	Type                        *models.BusinessType `json:"type"`
	Language                    *string              `json:"language"`
	Currency                    *string              `json:"currency"`
	TimeFormat                  *models.TimeFormat   `json:"time_format"`
	LocationName                *string              `json:"location_name"`
	Address                     *string              `json:"address"`
	Phone                       *string              `json:"phone"`
	TranslateToBusinessLanguage *bool                `json:"translate_to_business_language"`
}

// UpdateBusiness applies partial updates to the business profile
func UpdateBusiness(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Type != nil {
		business.Type = *req.Type
	}
	if req.Language != nil {
		business.Language = *req.Language
	}
	if req.Currency != nil {
		business.Currency = *req.Currency
	}
	if req.TimeFormat != nil {
		business.TimeFormat = *req.TimeFormat
	}
	if req.LocationName != nil {
		business.LocationName = *req.LocationName
	}
	if req.Address != nil {
		business.Address = *req.Address
	}
	if req.Phone != nil {
		business.Phone = *req.Phone
	}
	if req.TranslateToBusinessLanguage != nil {
		business.TranslateToBusinessLanguage = *req.TranslateToBusinessLanguage
	}

	if err := config.DB.Save(&business).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update business"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business updated", "business": business})
}

// UpdateNotificationSettings replaces the business's notification
// matrix. Omitted READY / OUT_FOR_DELIVERY flags stay "on".
func UpdateNotificationSettings(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}

	var settings models.NotificationSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	business.Notifications = settings
	if err := config.DB.Save(&business).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification settings updated", "notifications": business.Notifications})
}

// businessForCaller loads the business owned by (or staffed for) the
// logged-in user, writing the error response itself on failure.
func businessForCaller(c *gin.Context) (models.Business, bool) {
	userID := middleware.GetUserID(c)
	var business models.Business
	if err := config.DB.Where("owner_id = ?", userID).First(&business).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No business found for your account"})
		return models.Business{}, false
	}
	return business, true
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
