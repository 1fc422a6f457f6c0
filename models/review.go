package models

import (
	"time"

	"gorm.io/gorm"
)

// AccommodationReview is a user review of an accommodation. Reviews enter
// unapproved and only feed the accommodation's rating once an admin approves
// them.
type AccommodationReview struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	AccommodationID uint   `json:"accommodation_id" gorm:"not null;index"`
	UserID          uint   `json:"user_id" gorm:"not null"`
	Rating          int    `json:"rating" gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Comment         string `json:"comment" gorm:"type:text"`
	Approved        bool   `json:"approved" gorm:"default:false"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (AccommodationReview) TableName() string {
	return "accommodation_reviews"
}

// BusinessReview is a user review of a business directory entry. Business
// reviews have no approval workflow; every review feeds the rating.
type BusinessReview struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	BusinessID uint   `json:"business_id" gorm:"not null;index"`
	UserID     uint   `json:"user_id" gorm:"not null"`
	Rating     int    `json:"rating" gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Comment    string `json:"comment" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (BusinessReview) TableName() string {
	return "business_reviews"
}

// ReviewCreate is the request payload for submitting a review.
type ReviewCreate struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
