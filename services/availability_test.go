package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-romeiro-server/models"
	"portal-romeiro-server/utils"
)

func TestRoomIsAvailableNoBlocks(t *testing.T) {
	room := &models.Room{Quantity: 1}
	ci, co, err := utils.ParseDateRange("2024-08-10", "2024-08-12")
	require.NoError(t, err)

	assert.True(t, RoomIsAvailable(room, nil, ci, co))
}

func TestRoomIsAvailablePartiallyBooked(t *testing.T) {
	// Two units, one booked on each night: still available.
	room := &models.Room{Quantity: 2}
	ci, co, err := utils.ParseDateRange("2024-08-10", "2024-08-12")
	require.NoError(t, err)

	blocks := []models.RoomBlockedDate{
		{Date: "2024-08-10", BookedQuantity: 1},
		{Date: "2024-08-11", BookedQuantity: 1},
	}

	assert.True(t, RoomIsAvailable(room, blocks, ci, co))
}

func TestRoomIsAvailableOneFullDayBlocksRange(t *testing.T) {
	// A room with 2 units, fully booked on Aug 10 and half booked on Aug 11.
	room := &models.Room{Quantity: 2}
	blocks := []models.RoomBlockedDate{
		{Date: "2024-08-10", BookedQuantity: 2},
		{Date: "2024-08-11", BookedQuantity: 1},
	}

	ci, co, err := utils.ParseDateRange("2024-08-09", "2024-08-11")
	require.NoError(t, err)
	assert.False(t, RoomIsAvailable(room, blocks, ci, co),
		"range covering the fully booked day must be unavailable")

	ci, co, err = utils.ParseDateRange("2024-08-11", "2024-08-12")
	require.NoError(t, err)
	assert.True(t, RoomIsAvailable(room, blocks, ci, co),
		"one free unit on the only night of the stay")
}

func TestRoomIsAvailableCheckOutDayNotCounted(t *testing.T) {
	// Check-out day is exclusive: a block on the check-out day is irrelevant.
	room := &models.Room{Quantity: 1}
	blocks := []models.RoomBlockedDate{
		{Date: "2024-08-12", BookedQuantity: 1},
	}

	ci, co, err := utils.ParseDateRange("2024-08-10", "2024-08-12")
	require.NoError(t, err)
	assert.True(t, RoomIsAvailable(room, blocks, ci, co))
}

func TestRoomIsAvailableSumsRowsForSameDay(t *testing.T) {
	// Pre-migration ledgers could carry several rows per day; their quantities
	// add up.
	room := &models.Room{Quantity: 3}
	blocks := []models.RoomBlockedDate{
		{Date: "2024-08-10", BookedQuantity: 1},
		{Date: "2024-08-10", BookedQuantity: 1},
		{Date: "2024-08-10", BookedQuantity: 1},
	}

	ci, co, err := utils.ParseDateRange("2024-08-10", "2024-08-11")
	require.NoError(t, err)
	assert.False(t, RoomIsAvailable(room, blocks, ci, co))
}

func TestRoomIsAvailableZeroQuantityActsAsOne(t *testing.T) {
	room := &models.Room{Quantity: 0}
	ci, co, err := utils.ParseDateRange("2024-08-10", "2024-08-11")
	require.NoError(t, err)

	assert.True(t, RoomIsAvailable(room, nil, ci, co))

	blocks := []models.RoomBlockedDate{{Date: "2024-08-10", BookedQuantity: 1}}
	assert.False(t, RoomIsAvailable(room, blocks, ci, co))
}

func TestRoomIsAvailableOverbookedDay(t *testing.T) {
	// Booked beyond capacity (manual blocks can do that); still just "full".
	room := &models.Room{Quantity: 1}
	blocks := []models.RoomBlockedDate{{Date: "2024-08-10", BookedQuantity: 5}}

	ci, co, err := utils.ParseDateRange("2024-08-10", "2024-08-11")
	require.NoError(t, err)
	assert.False(t, RoomIsAvailable(room, blocks, ci, co))
}
