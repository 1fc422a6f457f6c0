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

// RegisterAdminAccommodationRoutes registers the admin CRUD for
// accommodations, their rooms and blocked dates, and review moderation
func RegisterAdminAccommodationRoutes(admin *gin.RouterGroup) {
	accommodations := admin.Group("/accommodations")
	accommodations.GET("", adminListAccommodations)
	accommodations.POST("", createAccommodation)
	accommodations.PUT("/:id", updateAccommodation)
	accommodations.DELETE("/:id", deleteAccommodation)

	accommodations.GET("/:id/rooms", adminListRooms)
	accommodations.POST("/:id/rooms", createRoom)
	accommodations.PUT("/:id/rooms/:roomId", updateRoom)
	accommodations.DELETE("/:id/rooms/:roomId", deleteRoom)

	accommodations.GET("/:id/rooms/:roomId/blocked-dates", listRoomBlockedDates)
	accommodations.POST("/:id/rooms/:roomId/blocked-dates", createRoomBlock)

	accommodations.GET("/:id/reviews", adminListAccommodationReviews)
	accommodations.PATCH("/:id/reviews/:reviewId/approve", approveAccommodationReview)
	accommodations.DELETE("/:id/reviews/:reviewId", deleteAccommodationReview)
}

// --- Accommodations ---

func adminListAccommodations(c *gin.Context) {
	var accommodations []models.Accommodation
	if err := database.DB.Preload("Rooms").Order("name ASC").Find(&accommodations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch accommodations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accommodations": accommodations})
}

func createAccommodation(c *gin.Context) {
	var req models.AccommodationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accommodation := models.Accommodation{
		Name:         req.Name,
		Type:         req.Type,
		Description:  req.Description,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		Amenities:    req.Amenities,
		Phone:        req.Phone,
		Whatsapp:     req.Whatsapp,
		ImageURL:     req.ImageURL,
		Featured:     req.Featured,
		Published:    req.Published,
		Basic:        req.Basic,
	}

	if err := database.DB.Create(&accommodation).Error; err != nil {
		log.Printf("❌ Failed to create accommodation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create accommodation"})
		return
	}

	broadcastUpdate("accommodations_updated", gin.H{"id": accommodation.ID})
	c.JSON(http.StatusCreated, gin.H{"message": "Accommodation created successfully", "accommodation": accommodation})
}

func updateAccommodation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.AccommodationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var accommodation models.Accommodation
	if err := database.DB.First(&accommodation, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Accommodation not found"})
		return
	}

	accommodation.Name = req.Name
	accommodation.Type = req.Type
	accommodation.Description = req.Description
	accommodation.Address = req.Address
	accommodation.Latitude = req.Latitude
	accommodation.Longitude = req.Longitude
	accommodation.CheckInTime = req.CheckInTime
	accommodation.CheckOutTime = req.CheckOutTime
	accommodation.Amenities = req.Amenities
	accommodation.Phone = req.Phone
	accommodation.Whatsapp = req.Whatsapp
	accommodation.ImageURL = req.ImageURL
	accommodation.Featured = req.Featured
	accommodation.Published = req.Published
	accommodation.Basic = req.Basic

	if err := database.DB.Save(&accommodation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update accommodation"})
		return
	}

	broadcastUpdate("accommodations_updated", gin.H{"id": accommodation.ID})
	c.JSON(http.StatusOK, gin.H{"message": "Accommodation updated successfully", "accommodation": accommodation})
}

func deleteAccommodation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var accommodation models.Accommodation
	if err := database.DB.First(&accommodation, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Accommodation not found"})
		return
	}

	if err := database.DB.Select("Rooms").Delete(&accommodation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete accommodation"})
		return
	}

	broadcastUpdate("accommodations_updated", gin.H{"id": accommodation.ID, "deleted": true})
	c.JSON(http.StatusOK, gin.H{"message": "Accommodation deleted successfully"})
}

// --- Rooms ---

func adminListRooms(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var rooms []models.Room
	if err := database.DB.
		Where("accommodation_id = ?", id).
		Order("price_per_night ASC").
		Find(&rooms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rooms"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

func createRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.RoomCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var accommodation models.Accommodation
	if err := database.DB.First(&accommodation, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Accommodation not found"})
		return
	}

	room := models.Room{
		AccommodationID: accommodation.ID,
		Name:            req.Name,
		MaxGuests:       req.MaxGuests,
		Beds:            req.Beds,
		PricePerNight:   req.PricePerNight,
		Quantity:        req.Quantity,
		Published:       true,
	}
	if req.Published != nil {
		room.Published = *req.Published
	}

	if err := database.DB.Create(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create room"})
		return
	}

	broadcastUpdate("accommodations_updated", gin.H{"id": accommodation.ID})
	c.JSON(http.StatusCreated, gin.H{"message": "Room created successfully", "room": room})
}

func updateRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	var req models.RoomCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, ok := loadRoomOfAccommodation(c, id, roomID)
	if !ok {
		return
	}

	room.Name = req.Name
	room.MaxGuests = req.MaxGuests
	room.Beds = req.Beds
	room.PricePerNight = req.PricePerNight
	room.Quantity = req.Quantity
	if req.Published != nil {
		room.Published = *req.Published
	}

	if err := database.DB.Save(room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update room"})
		return
	}

	broadcastUpdate("accommodations_updated", gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Room updated successfully", "room": room})
}

func deleteRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	room, ok := loadRoomOfAccommodation(c, id, roomID)
	if !ok {
		return
	}

	if err := database.DB.Delete(room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room"})
		return
	}

	broadcastUpdate("accommodations_updated", gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}

// --- Blocked dates ---

func listRoomBlockedDates(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	room, ok := loadRoomOfAccommodation(c, id, roomID)
	if !ok {
		return
	}

	var blocks []models.RoomBlockedDate
	if err := database.DB.
		Where("room_id = ?", room.ID).
		Order("date ASC").
		Find(&blocks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blocked dates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blockedDates": blocks})
}

// createRoomBlock consumes room capacity for each night of the given range,
// for a manual block or an externally confirmed reservation.
func createRoomBlock(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	var req models.RoomBlockCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, ok := loadRoomOfAccommodation(c, id, roomID)
	if !ok {
		return
	}

	checkIn, checkOut, err := utils.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.BlockRoomDates(database.DB, room.ID, checkIn, checkOut, req.Quantity, req.Reason); err != nil {
		log.Printf("❌ Failed to block dates for room %d: %v", room.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to block dates"})
		return
	}

	broadcastUpdate("availability_updated", gin.H{
		"accommodation_id": id,
		"room_id":          room.ID,
	})
	c.JSON(http.StatusCreated, gin.H{"message": "Dates blocked successfully"})
}

// --- Review moderation ---

func adminListAccommodationReviews(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	query := database.DB.Where("accommodation_id = ?", id)
	if c.Query("pending") == "true" {
		query = query.Where("approved = ?", false)
	}

	var reviews []models.AccommodationReview
	if err := query.Preload("User").Order("created_at DESC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// approveAccommodationReview approves a pending review and recomputes the
// accommodation's rating over approved reviews in the same transaction.
func approveAccommodationReview(c *gin.Context) {
	accommodationID, ok := idParam(c)
	if !ok {
		return
	}

	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	var review models.AccommodationReview
	if err := database.DB.
		Where("accommodation_id = ?", accommodationID).
		First(&review, reviewID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&review).Update("approved", true).Error; err != nil {
			return err
		}
		return services.RecomputeAccommodationRating(tx, review.AccommodationID)
	})
	if err != nil {
		log.Printf("❌ Failed to approve review %d: %v", review.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review approved successfully", "review": review})
}

// deleteAccommodationReview removes a review and recomputes the rating.
// Deleting the last approved review resets the rating to null.
func deleteAccommodationReview(c *gin.Context) {
	accommodationID, ok := idParam(c)
	if !ok {
		return
	}

	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	var review models.AccommodationReview
	if err := database.DB.
		Where("accommodation_id = ?", accommodationID).
		First(&review, reviewID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&review).Error; err != nil {
			return err
		}
		return services.RecomputeAccommodationRating(tx, review.AccommodationID)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
