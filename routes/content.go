package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portal-romeiro-server/database"
	"portal-romeiro-server/models"
)

// RegisterContentRoutes registers the public news, video and attraction
// routes
func RegisterContentRoutes(api *gin.RouterGroup) {
	news := api.Group("/news")
	news.GET("", listNews)
	news.GET("/:id", getNews)

	api.GET("/videos", listVideos)

	attractions := api.Group("/attractions")
	attractions.GET("", listAttractions)
	attractions.GET("/:id", getAttraction)
}

// listNews returns published news, newest first
func listNews(c *gin.Context) {
	var news []models.News
	if err := database.DB.
		Where("published = ?", true).
		Order("published_at DESC NULLS LAST, created_at DESC").
		Limit(50).
		Find(&news).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"news": news})
}

// getNews returns one published news article
func getNews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid news ID"})
		return
	}

	var article models.News
	if err := database.DB.Where("published = ?", true).First(&article, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News article not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"news": article})
}

// listVideos returns published videos, newest first
func listVideos(c *gin.Context) {
	var videos []models.Video
	if err := database.DB.
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&videos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

// listAttractions returns published tourist attractions
func listAttractions(c *gin.Context) {
	var attractions []models.Attraction
	if err := database.DB.
		Where("published = ?", true).
		Order("name ASC").
		Find(&attractions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attractions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attractions": attractions})
}

// getAttraction returns one published attraction
func getAttraction(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attraction ID"})
		return
	}

	var attraction models.Attraction
	if err := database.DB.Where("published = ?", true).First(&attraction, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attraction not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attraction": attraction})
}
