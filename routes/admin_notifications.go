package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-romeiro-server/database"
	"portal-romeiro-server/models"
	"portal-romeiro-server/services"
)

// RegisterAdminNotificationRoutes registers the admin broadcast routes
func RegisterAdminNotificationRoutes(admin *gin.RouterGroup) {
	notifications := admin.Group("/notifications")
	notifications.GET("", adminListNotifications)
	notifications.POST("", createNotification)
	notifications.POST("/:id/send", sendNotification)
}

func adminListNotifications(c *gin.Context) {
	var notifications []models.Notification
	if err := database.DB.Order("created_at DESC").Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func createNotification(c *gin.Context) {
	var req models.NotificationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notification := models.Notification{
		Title:     req.Title,
		Body:      req.Body,
		Type:      req.Type,
		ActionURL: req.ActionURL,
	}
	if notification.Type == "" {
		notification.Type = "general"
	}

	if err := database.DB.Create(&notification).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notification"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Notification created successfully",
		"notification": notification,
	})
}

// sendNotification broadcasts a notification to every active user's inbox and
// dispatches pushes. Sending a completed broadcast again is rejected; sending
// one that was interrupted mid-fan-out resumes it.
func sendNotification(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var notification models.Notification
	if err := database.DB.First(&notification, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	if notification.Sent && notification.BroadcastDone {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Notification already sent"})
		return
	}

	if notification.Sent {
		log.Printf("🔄 Resuming interrupted broadcast %d from cursor %d", notification.ID, notification.BroadcastCursor)
	}

	result, err := services.SendBroadcast(database.DB, &notification)
	if err != nil {
		log.Printf("❌ Broadcast %d failed: %v", notification.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send notification"})
		return
	}

	log.Printf("✅ Broadcast %d delivered to %d users (%d pushes sent, %d errors)",
		notification.ID, result.UserCount, result.PushSent, result.PushErrors)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Notification sent successfully",
		"userCount":  result.UserCount,
		"pushSent":   result.PushSent,
		"pushErrors": result.PushErrors,
	})
}
