package models

import (
	"time"

	"gorm.io/gorm"
)

// Business is a directory entry for a local commerce (restaurant, shop,
// pharmacy, ...), shown in the app's business listing.
type Business struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:255;not null"`
	Category    string  `json:"category" gorm:"size:100;not null;index"`
	Description string  `json:"description" gorm:"type:text"`
	Address     string  `json:"address" gorm:"size:255"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Phone       string  `json:"phone" gorm:"size:30"`
	Whatsapp    string  `json:"whatsapp" gorm:"size:30"`
	ImageURL    string  `json:"image_url" gorm:"size:512"`

	// Rating is the mean of this business's reviews rounded to 1 decimal,
	// stored as text; nil when there are none.
	Rating       *string `json:"rating" gorm:"type:varchar(8)"`
	ReviewsCount int     `json:"reviews_count" gorm:"default:0"`

	Featured  bool `json:"featured" gorm:"default:false"`
	Published bool `json:"published" gorm:"default:false"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Business) TableName() string {
	return "businesses"
}

// BusinessCreate is the admin request payload for creating or updating a
// business listing.
type BusinessCreate struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Phone       string  `json:"phone"`
	Whatsapp    string  `json:"whatsapp"`
	ImageURL    string  `json:"image_url"`
	Featured    bool    `json:"featured"`
	Published   bool    `json:"published"`
}
