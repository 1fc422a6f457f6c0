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
	"portal-romeiro-server/utils"
)

// RegisterAccommodationRoutes registers the public accommodation routes
func RegisterAccommodationRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	router.GET("", listAccommodations)
	router.GET("/search", searchAccommodations)
	router.GET("/:id", getAccommodation)
	router.GET("/:id/availability", getAccommodationAvailability)
	router.GET("/:id/reviews", getAccommodationReviews)
	router.POST("/:id/reviews", authRequired, createAccommodationReview)
}

// listAccommodations returns all published accommodations
func listAccommodations(c *gin.Context) {
	var accommodations []models.Accommodation
	query := database.DB.Where("published = ?", true)

	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}
	if accType := c.Query("type"); accType != "" {
		query = query.Where("type = ?", accType)
	}

	if err := query.Order("featured DESC, name ASC").Find(&accommodations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch accommodations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accommodations": accommodations})
}

// getAccommodation returns one published accommodation with its rooms
func getAccommodation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid accommodation ID"})
		return
	}

	var accommodation models.Accommodation
	if err := database.DB.
		Preload("Rooms", "published = ?", true).
		Where("published = ?", true).
		First(&accommodation, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Accommodation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accommodation": accommodation})
}

// searchAccommodations runs the city-wide availability search for a date
// range. Basic listings come back unconditionally alongside the dated
// results.
func searchAccommodations(c *gin.Context) {
	checkInParam := c.Query("checkIn")
	checkOutParam := c.Query("checkOut")

	if checkInParam == "" || checkOutParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkIn and checkOut are required"})
		return
	}

	checkIn, checkOut, err := utils.ParseDateRange(checkInParam, checkOutParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accommodations, err := services.SearchAvailable(database.DB, checkIn, checkOut)
	if err != nil {
		log.Printf("❌ Availability search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	basics, err := services.BasicAccommodations(database.DB)
	if err != nil {
		log.Printf("❌ Failed to load basic accommodations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accommodations":      accommodations,
		"basicAccommodations": basics,
		"checkIn":             checkInParam,
		"checkOut":            checkOutParam,
	})
}

// getAccommodationAvailability returns the rooms of one accommodation that
// are free for the requested range
func getAccommodationAvailability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid accommodation ID"})
		return
	}

	checkInParam := c.Query("checkIn")
	checkOutParam := c.Query("checkOut")
	if checkInParam == "" || checkOutParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkIn and checkOut are required"})
		return
	}

	checkIn, checkOut, err := utils.ParseDateRange(checkInParam, checkOutParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var accommodation models.Accommodation
	if err := database.DB.Where("published = ?", true).First(&accommodation, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Accommodation not found"})
		return
	}

	rooms, err := services.AvailableRoomsFor(database.DB, accommodation.ID, checkIn, checkOut)
	if err != nil {
		log.Printf("❌ Availability check failed for accommodation %d: %v", accommodation.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Availability check failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accommodation":  accommodation,
		"availableRooms": rooms,
		"checkIn":        checkInParam,
		"checkOut":       checkOutParam,
	})
}

// getAccommodationReviews returns the approved reviews of an accommodation
func getAccommodationReviews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid accommodation ID"})
		return
	}

	var accommodation models.Accommodation
	if err := database.DB.Where("published = ?", true).First(&accommodation, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Accommodation not found"})
		return
	}

	var reviews []models.AccommodationReview
	if err := database.DB.
		Where("accommodation_id = ? AND approved = ?", accommodation.ID, true).
		Preload("User").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// createAccommodationReview submits a review. The review waits for admin
// approval before it feeds the accommodation's rating, so no recompute
// happens here.
func createAccommodationReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid accommodation ID"})
		return
	}

	var reviewData models.ReviewCreate
	if err := c.ShouldBindJSON(&reviewData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review data", "details": err.Error()})
		return
	}

	var accommodation models.Accommodation
	if err := database.DB.Where("published = ?", true).First(&accommodation, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Accommodation not found"})
		return
	}

	review := models.AccommodationReview{
		AccommodationID: accommodation.ID,
		UserID:          c.GetUint("user_id"),
		Rating:          reviewData.Rating,
		Comment:         reviewData.Comment,
		Approved:        false,
	}

	if err := database.DB.Create(&review).Error; err != nil {
		log.Printf("❌ Failed to create accommodation review: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review submitted for approval",
		"review":  review,
	})
}

// roomIDParam parses the :roomId path parameter shared by the admin room
// handlers.
func roomIDParam(c *gin.Context) (uint, bool) {
	roomID, err := strconv.ParseUint(c.Param("roomId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return 0, false
	}
	return uint(roomID), true
}

// loadRoomOfAccommodation fetches a room scoped to its accommodation; rooms
// are owned by exactly one accommodation and are never addressed bare.
func loadRoomOfAccommodation(c *gin.Context, accommodationID uint, roomID uint) (*models.Room, bool) {
	var room models.Room
	if err := database.DB.
		Where("accommodation_id = ?", accommodationID).
		First(&room, roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch room"})
		}
		return nil, false
	}
	return &room, true
}
