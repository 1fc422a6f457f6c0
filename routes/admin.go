package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portal-romeiro-server/database"
	"portal-romeiro-server/models"
	"portal-romeiro-server/utils"
)

// AdminLogin handles admin panel login
func AdminLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		log.Printf("❌ Admin login failed for %s: %v", req.Email, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if user.Role != models.RoleAdmin {
		log.Printf("❌ Login attempt by non-admin user %d with role %s", user.ID, user.Role)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin access required"})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account is inactive"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		log.Printf("❌ Invalid password for admin user %d", user.ID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		log.Printf("❌ Failed to generate token for admin user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// GetCurrentAdmin returns the authenticated admin user
func GetCurrentAdmin(c *gin.Context) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetDashboardStats returns the admin dashboard counters
func GetDashboardStats(c *gin.Context) {
	counters := []struct {
		name  string
		query *gorm.DB
	}{
		{"users", database.DB.Model(&models.User{})},
		{"accommodations", database.DB.Model(&models.Accommodation{}).Where("published = ?", true)},
		{"businesses", database.DB.Model(&models.Business{}).Where("published = ?", true)},
		{"news", database.DB.Model(&models.News{}).Where("published = ?", true)},
		{"pending_reviews", database.DB.Model(&models.AccommodationReview{}).Where("approved = ?", false)},
	}

	stats := gin.H{}
	for _, counter := range counters {
		var count int64
		if err := counter.query.Count(&count).Error; err != nil {
			log.Printf("❌ Failed to count %s for dashboard: %v", counter.name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard stats"})
			return
		}
		stats[counter.name] = count
	}

	c.JSON(http.StatusOK, stats)
}
