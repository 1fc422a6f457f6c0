package services

import (
	"fmt"

	"gorm.io/gorm"

	"portal-romeiro-server/models"
)

// MeanRating computes the arithmetic mean of 1-5 ratings rounded to one
// decimal place, rendered as text the way the mobile app displays it. An
// empty set yields nil, which resets the parent's rating column to NULL.
func MeanRating(ratings []int) *string {
	if len(ratings) == 0 {
		return nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	formatted := fmt.Sprintf("%.1f", mean)
	return &formatted
}

// RecomputeAccommodationRating rewrites the accommodation's rating and review
// count from its approved reviews. Only approved reviews ever feed the
// rating; an unapproved or deleted review is invisible to it. Run inside the
// same transaction as the review mutation so concurrent writers cannot leave
// a stale aggregate behind.
func RecomputeAccommodationRating(tx *gorm.DB, accommodationID uint) error {
	var ratings []int
	if err := tx.Model(&models.AccommodationReview{}).
		Where("accommodation_id = ? AND approved = ?", accommodationID, true).
		Pluck("rating", &ratings).Error; err != nil {
		return err
	}

	return tx.Model(&models.Accommodation{}).
		Where("id = ?", accommodationID).
		Updates(map[string]interface{}{
			"rating":        MeanRating(ratings),
			"reviews_count": len(ratings),
		}).Error
}

// RecomputeBusinessRating rewrites the business's rating and review count
// from all of its reviews. Business reviews have no approval step.
func RecomputeBusinessRating(tx *gorm.DB, businessID uint) error {
	var ratings []int
	if err := tx.Model(&models.BusinessReview{}).
		Where("business_id = ?", businessID).
		Pluck("rating", &ratings).Error; err != nil {
		return err
	}

	return tx.Model(&models.Business{}).
		Where("id = ?", businessID).
		Updates(map[string]interface{}{
			"rating":        MeanRating(ratings),
			"reviews_count": len(ratings),
		}).Error
}
