package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanRatingEmptyIsNil(t *testing.T) {
	assert.Nil(t, MeanRating(nil))
	assert.Nil(t, MeanRating([]int{}))
}

func TestMeanRatingSingleReview(t *testing.T) {
	rating := MeanRating([]int{4})
	require.NotNil(t, rating)
	assert.Equal(t, "4.0", *rating)
}

func TestMeanRatingRoundsToOneDecimal(t *testing.T) {
	// (5 + 4 + 4) / 3 = 4.333...
	rating := MeanRating([]int{5, 4, 4})
	require.NotNil(t, rating)
	assert.Equal(t, "4.3", *rating)

	// (5 + 4) / 2 = 4.5
	rating = MeanRating([]int{5, 4})
	require.NotNil(t, rating)
	assert.Equal(t, "4.5", *rating)

	// (1 + 2 + 2) / 3 = 1.666... rounds up
	rating = MeanRating([]int{1, 2, 2})
	require.NotNil(t, rating)
	assert.Equal(t, "1.7", *rating)
}
