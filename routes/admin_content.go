package routes

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portal-romeiro-server/database"
	"portal-romeiro-server/models"
	"portal-romeiro-server/services"
)

// RegisterAdminContentRoutes registers the admin CRUD for news, videos,
// attractions and businesses
func RegisterAdminContentRoutes(admin *gin.RouterGroup) {
	news := admin.Group("/news")
	news.GET("", adminListNews)
	news.POST("", createNews)
	news.PUT("/:id", updateNews)
	news.DELETE("/:id", deleteNews)

	videos := admin.Group("/videos")
	videos.GET("", adminListVideos)
	videos.POST("", createVideo)
	videos.PUT("/:id", updateVideo)
	videos.DELETE("/:id", deleteVideo)

	attractions := admin.Group("/attractions")
	attractions.GET("", adminListAttractions)
	attractions.POST("", createAttraction)
	attractions.PUT("/:id", updateAttraction)
	attractions.DELETE("/:id", deleteAttraction)

	businesses := admin.Group("/businesses")
	businesses.GET("", adminListBusinesses)
	businesses.POST("", createBusiness)
	businesses.PUT("/:id", updateBusiness)
	businesses.DELETE("/:id", deleteBusiness)
	businesses.GET("/:id/reviews", adminListBusinessReviews)
	businesses.DELETE("/:id/reviews/:reviewId", deleteBusinessReview)
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

// --- News ---

func adminListNews(c *gin.Context) {
	var news []models.News
	if err := database.DB.Order("created_at DESC").Find(&news).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": news})
}

func createNews(c *gin.Context) {
	var req models.NewsCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article := models.News{
		Title:     req.Title,
		Summary:   req.Summary,
		Body:      req.Body,
		ImageURL:  req.ImageURL,
		Published: req.Published,
	}
	if req.Published {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := database.DB.Create(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news"})
		return
	}

	broadcastUpdate("news_updated", gin.H{"id": article.ID})
	c.JSON(http.StatusCreated, gin.H{"message": "News created successfully", "news": article})
}

func updateNews(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.NewsCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var article models.News
	if err := database.DB.First(&article, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News article not found"})
		return
	}

	wasPublished := article.Published
	article.Title = req.Title
	article.Summary = req.Summary
	article.Body = req.Body
	article.ImageURL = req.ImageURL
	article.Published = req.Published
	if req.Published && !wasPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := database.DB.Save(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news"})
		return
	}

	broadcastUpdate("news_updated", gin.H{"id": article.ID})
	c.JSON(http.StatusOK, gin.H{"message": "News updated successfully", "news": article})
}

func deleteNews(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var article models.News
	if err := database.DB.First(&article, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News article not found"})
		return
	}

	if err := database.DB.Delete(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news"})
		return
	}

	broadcastUpdate("news_updated", gin.H{"id": article.ID, "deleted": true})
	c.JSON(http.StatusOK, gin.H{"message": "News deleted successfully"})
}

// --- Videos ---

func adminListVideos(c *gin.Context) {
	var videos []models.Video
	if err := database.DB.Order("created_at DESC").Find(&videos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

func createVideo(c *gin.Context) {
	var req models.VideoCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video := models.Video{
		Title:        req.Title,
		YoutubeID:    req.YoutubeID,
		ThumbnailURL: req.ThumbnailURL,
		Published:    req.Published,
	}

	if err := database.DB.Create(&video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create video"})
		return
	}

	broadcastUpdate("videos_updated", gin.H{"id": video.ID})
	c.JSON(http.StatusCreated, gin.H{"message": "Video created successfully", "video": video})
}

func updateVideo(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.VideoCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var video models.Video
	if err := database.DB.First(&video, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}

	video.Title = req.Title
	video.YoutubeID = req.YoutubeID
	video.ThumbnailURL = req.ThumbnailURL
	video.Published = req.Published

	if err := database.DB.Save(&video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update video"})
		return
	}

	broadcastUpdate("videos_updated", gin.H{"id": video.ID})
	c.JSON(http.StatusOK, gin.H{"message": "Video updated successfully", "video": video})
}

func deleteVideo(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var video models.Video
	if err := database.DB.First(&video, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}

	if err := database.DB.Delete(&video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video"})
		return
	}

	broadcastUpdate("videos_updated", gin.H{"id": video.ID, "deleted": true})
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted successfully"})
}

// --- Attractions ---

func adminListAttractions(c *gin.Context) {
	var attractions []models.Attraction
	if err := database.DB.Order("name ASC").Find(&attractions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attractions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"attractions": attractions})
}

func createAttraction(c *gin.Context) {
	var req models.AttractionCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attraction := models.Attraction{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ImageURL:    req.ImageURL,
		Published:   req.Published,
	}

	if err := database.DB.Create(&attraction).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create attraction"})
		return
	}

	broadcastUpdate("attractions_updated", gin.H{"id": attraction.ID})
	c.JSON(http.StatusCreated, gin.H{"message": "Attraction created successfully", "attraction": attraction})
}

func updateAttraction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.AttractionCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var attraction models.Attraction
	if err := database.DB.First(&attraction, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attraction not found"})
		return
	}

	attraction.Name = req.Name
	attraction.Description = req.Description
	attraction.Address = req.Address
	attraction.Latitude = req.Latitude
	attraction.Longitude = req.Longitude
	attraction.ImageURL = req.ImageURL
	attraction.Published = req.Published

	if err := database.DB.Save(&attraction).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update attraction"})
		return
	}

	broadcastUpdate("attractions_updated", gin.H{"id": attraction.ID})
	c.JSON(http.StatusOK, gin.H{"message": "Attraction updated successfully", "attraction": attraction})
}

func deleteAttraction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var attraction models.Attraction
	if err := database.DB.First(&attraction, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attraction not found"})
		return
	}

	if err := database.DB.Delete(&attraction).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete attraction"})
		return
	}

	broadcastUpdate("attractions_updated", gin.H{"id": attraction.ID, "deleted": true})
	c.JSON(http.StatusOK, gin.H{"message": "Attraction deleted successfully"})
}

// --- Businesses ---

func adminListBusinesses(c *gin.Context) {
	var businesses []models.Business
	if err := database.DB.Order("name ASC").Find(&businesses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch businesses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

func createBusiness(c *gin.Context) {
	var req models.BusinessCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	business := models.Business{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Phone:       req.Phone,
		Whatsapp:    req.Whatsapp,
		ImageURL:    req.ImageURL,
		Featured:    req.Featured,
		Published:   req.Published,
	}

	if err := database.DB.Create(&business).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create business"})
		return
	}

	broadcastUpdate("businesses_updated", gin.H{"id": business.ID})
	c.JSON(http.StatusCreated, gin.H{"message": "Business created successfully", "business": business})
}

func updateBusiness(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.BusinessCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var business models.Business
	if err := database.DB.First(&business, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	business.Name = req.Name
	business.Category = req.Category
	business.Description = req.Description
	business.Address = req.Address
	business.Latitude = req.Latitude
	business.Longitude = req.Longitude
	business.Phone = req.Phone
	business.Whatsapp = req.Whatsapp
	business.ImageURL = req.ImageURL
	business.Featured = req.Featured
	business.Published = req.Published

	if err := database.DB.Save(&business).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update business"})
		return
	}

	broadcastUpdate("businesses_updated", gin.H{"id": business.ID})
	c.JSON(http.StatusOK, gin.H{"message": "Business updated successfully", "business": business})
}

func deleteBusiness(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var business models.Business
	if err := database.DB.First(&business, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	if err := database.DB.Delete(&business).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete business"})
		return
	}

	broadcastUpdate("businesses_updated", gin.H{"id": business.ID, "deleted": true})
	c.JSON(http.StatusOK, gin.H{"message": "Business deleted successfully"})
}

func adminListBusinessReviews(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var reviews []models.BusinessReview
	if err := database.DB.
		Where("business_id = ?", id).
		Preload("User").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// deleteBusinessReview removes a review and recomputes the business's rating
// in the same transaction. Deleting the last review resets the rating to
// null.
func deleteBusinessReview(c *gin.Context) {
	businessID, ok := idParam(c)
	if !ok {
		return
	}

	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	var review models.BusinessReview
	if err := database.DB.
		Where("business_id = ?", businessID).
		First(&review, reviewID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&review).Error; err != nil {
			return err
		}
		return services.RecomputeBusinessRating(tx, review.BusinessID)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
