package models

import (
	"time"

	"gorm.io/gorm"
)

// News is an editorial article shown in the app's news feed.
type News struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Summary     string     `json:"summary" gorm:"size:512"`
	Body        string     `json:"body" gorm:"type:text"`
	ImageURL    string     `json:"image_url" gorm:"size:512"`
	Published   bool       `json:"published" gorm:"default:false"`
	PublishedAt *time.Time `json:"published_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (News) TableName() string {
	return "news"
}

// Video is a YouTube video entry shown in the app's video gallery.
type Video struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Title        string `json:"title" gorm:"size:255;not null"`
	YoutubeID    string `json:"youtube_id" gorm:"size:50;not null"`
	ThumbnailURL string `json:"thumbnail_url" gorm:"size:512"`
	Published    bool   `json:"published" gorm:"default:false"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Video) TableName() string {
	return "videos"
}

// Attraction is a tourist attraction (sanctuary, viewpoint, museum, ...).
type Attraction struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:255;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Address     string  `json:"address" gorm:"size:255"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ImageURL    string  `json:"image_url" gorm:"size:512"`
	Published   bool    `json:"published" gorm:"default:false"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Attraction) TableName() string {
	return "attractions"
}

// NewsCreate is the admin request payload for news articles.
type NewsCreate struct {
	Title     string `json:"title" binding:"required"`
	Summary   string `json:"summary"`
	Body      string `json:"body"`
	ImageURL  string `json:"image_url"`
	Published bool   `json:"published"`
}

// VideoCreate is the admin request payload for videos.
type VideoCreate struct {
	Title        string `json:"title" binding:"required"`
	YoutubeID    string `json:"youtube_id" binding:"required"`
	ThumbnailURL string `json:"thumbnail_url"`
	Published    bool   `json:"published"`
}

// AttractionCreate is the admin request payload for attractions.
type AttractionCreate struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ImageURL    string  `json:"image_url"`
	Published   bool    `json:"published"`
}
