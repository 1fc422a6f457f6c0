package routes

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portal-romeiro-server/database"
	"portal-romeiro-server/models"
)

// RegisterNotificationRoutes registers the authenticated user inbox routes
func RegisterNotificationRoutes(router *gin.RouterGroup) {
	router.GET("", getUserNotifications)
	router.GET("/unread-count", getUnreadCount)
	router.POST("/:id/read", markNotificationAsRead)
	router.POST("/read-all", markAllNotificationsAsRead)
	router.POST("/register-device", registerPushDevice)
}

// getUserNotifications returns the user's inbox, newest first
func getUserNotifications(c *gin.Context) {
	userID := c.GetUint("user_id")

	var notifications []models.UserNotification
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error; err != nil {
		log.Printf("❌ Error fetching notifications for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"notifications": notifications,
	})
}

// getUnreadCount returns the count of unread inbox entries
func getUnreadCount(c *gin.Context) {
	userID := c.GetUint("user_id")

	var count int64
	if err := database.DB.Model(&models.UserNotification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get unread count"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// markNotificationAsRead marks one inbox entry as read
func markNotificationAsRead(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	var notification models.UserNotification
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	notification.Read = true
	notification.UpdatedAt = time.Now()

	if err := database.DB.Save(&notification).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notification marked as read",
	})
}

// markAllNotificationsAsRead marks the user's whole inbox as read
func markAllNotificationsAsRead(c *gin.Context) {
	userID := c.GetUint("user_id")

	if err := database.DB.Model(&models.UserNotification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Updates(map[string]interface{}{
			"read":       true,
			"updated_at": time.Now(),
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications as read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All notifications marked as read",
	})
}

// registerPushDevice stores or re-activates an Expo push token
func registerPushDevice(c *gin.Context) {
	userID := c.GetUint("user_id")

	var request struct {
		PushToken string `json:"push_token" binding:"required"`
		Platform  string `json:"platform" binding:"required,oneof=ios android"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.PushDevice
	err := database.DB.Where("token = ?", request.PushToken).First(&existing).Error

	if err == gorm.ErrRecordNotFound {
		device := models.PushDevice{
			UserID:   userID,
			Token:    request.PushToken,
			Platform: request.Platform,
			Active:   true,
		}

		if err := database.DB.Create(&device).Error; err != nil {
			log.Printf("❌ Error creating push device: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register device"})
			return
		}

		log.Printf("✅ Push device registered for user %d", userID)
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	} else {
		// Token moved to another account or was re-registered
		existing.UserID = userID
		existing.Platform = request.Platform
		existing.Active = true
		existing.UpdatedAt = time.Now()

		if err := database.DB.Save(&existing).Error; err != nil {
			log.Printf("❌ Error updating push device: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update device"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Push device registered successfully",
	})
}
