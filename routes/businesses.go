package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portal-romeiro-server/database"
	"portal-romeiro-server/models"
	"portal-romeiro-server/services"
)

// RegisterBusinessRoutes registers the public business directory routes
func RegisterBusinessRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	router.GET("", listBusinesses)
	router.GET("/:id", getBusiness)
	router.GET("/:id/reviews", getBusinessReviews)
	router.POST("/:id/reviews", authRequired, createBusinessReview)
}

// listBusinesses returns all published businesses, optionally by category
func listBusinesses(c *gin.Context) {
	var businesses []models.Business
	query := database.DB.Where("published = ?", true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}

	if err := query.Order("featured DESC, name ASC").Find(&businesses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch businesses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

// getBusiness returns one published business
func getBusiness(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID"})
		return
	}

	var business models.Business
	if err := database.DB.Where("published = ?", true).First(&business, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"business": business})
}

// getBusinessReviews returns a business's reviews
func getBusinessReviews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID"})
		return
	}

	var business models.Business
	if err := database.DB.Where("published = ?", true).First(&business, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	var reviews []models.BusinessReview
	if err := database.DB.
		Where("business_id = ?", business.ID).
		Preload("User").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// createBusinessReview submits a review and recomputes the business's rating
// in the same transaction as the insert.
func createBusinessReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID"})
		return
	}

	var reviewData models.ReviewCreate
	if err := c.ShouldBindJSON(&reviewData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review data", "details": err.Error()})
		return
	}

	var business models.Business
	if err := database.DB.Where("published = ?", true).First(&business, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	review := models.BusinessReview{
		BusinessID: business.ID,
		UserID:     c.GetUint("user_id"),
		Rating:     reviewData.Rating,
		Comment:    reviewData.Comment,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return services.RecomputeBusinessRating(tx, business.ID)
	})
	if err != nil {
		log.Printf("❌ Failed to create business review: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review created successfully",
		"review":  review,
	})
}
