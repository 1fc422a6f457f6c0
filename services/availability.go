package services

import (
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portal-romeiro-server/models"
	"portal-romeiro-server/utils"
)

// AccommodationAvailability pairs an accommodation with the rooms that are
// free for the whole requested range, sorted ascending by price per night.
type AccommodationAvailability struct {
	models.Accommodation
	AvailableRooms []models.Room `json:"available_rooms"`
}

// RoomIsAvailable reports whether the room has unbooked capacity on every
// night of the half-open range [checkIn, checkOut). blocks must hold the
// room's ledger rows for that range; rows for the same day are summed. A
// single fully-booked day makes the whole range unavailable. A zero-night
// range is vacuously available; handlers reject those before getting here.
func RoomIsAvailable(room *models.Room, blocks []models.RoomBlockedDate, checkIn, checkOut time.Time) bool {
	quantity := room.EffectiveQuantity()

	bookedByDay := make(map[string]int, len(blocks))
	for _, b := range blocks {
		bookedByDay[b.Date] += b.BookedQuantity
	}

	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		if bookedByDay[utils.FormatDate(d)] >= quantity {
			return false
		}
	}
	return true
}

// IsRoomAvailable is the storage-backed form of RoomIsAvailable. A room that
// does not exist is unavailable, not an error.
func IsRoomAvailable(db *gorm.DB, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var room models.Room
	if err := db.First(&room, roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}

	blocks, err := blockedDatesInRange(db, roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}

	return RoomIsAvailable(&room, blocks, checkIn, checkOut), nil
}

// AvailableRoomsFor returns the accommodation's published rooms that are free
// for the whole range, cheapest first.
func AvailableRoomsFor(db *gorm.DB, accommodationID uint, checkIn, checkOut time.Time) ([]models.Room, error) {
	var rooms []models.Room
	if err := db.Where("accommodation_id = ? AND published = ?", accommodationID, true).Find(&rooms).Error; err != nil {
		return nil, err
	}

	available := make([]models.Room, 0, len(rooms))
	for i := range rooms {
		blocks, err := blockedDatesInRange(db, rooms[i].ID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		if RoomIsAvailable(&rooms[i], blocks, checkIn, checkOut) {
			available = append(available, rooms[i])
		}
	}

	sort.Slice(available, func(i, j int) bool {
		return available[i].PricePerNight < available[j].PricePerNight
	})

	return available, nil
}

// SearchAvailable runs the city-wide availability search: every published,
// bookable accommodation that has at least one room free for the whole range.
// Accommodations with zero available rooms are silently dropped, never
// returned with an empty room list.
func SearchAvailable(db *gorm.DB, checkIn, checkOut time.Time) ([]AccommodationAvailability, error) {
	var accommodations []models.Accommodation
	if err := db.Where("published = ? AND basic = ?", true, false).Find(&accommodations).Error; err != nil {
		return nil, err
	}

	results := make([]AccommodationAvailability, 0, len(accommodations))
	for _, acc := range accommodations {
		rooms, err := AvailableRoomsFor(db, acc.ID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		if len(rooms) == 0 {
			continue
		}
		results = append(results, AccommodationAvailability{
			Accommodation:  acc,
			AvailableRooms: rooms,
		})
	}

	return results, nil
}

// BasicAccommodations returns the published free-tier listings. They carry no
// rooms and are shown regardless of the requested dates.
func BasicAccommodations(db *gorm.DB) ([]models.Accommodation, error) {
	var basics []models.Accommodation
	err := db.Where("published = ? AND basic = ?", true, true).Find(&basics).Error
	return basics, err
}

// BlockRoomDates consumes capacity for every night of [checkIn, checkOut).
// Each day holds one aggregate ledger row; blocking the same day again adds
// to its booked quantity.
func BlockRoomDates(db *gorm.DB, roomID uint, checkIn, checkOut time.Time, quantity int, reason string) error {
	if quantity < 1 {
		quantity = 1
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, day := range utils.DatesInRange(checkIn, checkOut) {
			block := models.RoomBlockedDate{
				RoomID:         roomID,
				Date:           utils.FormatDate(day),
				BookedQuantity: quantity,
				Reason:         reason,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "room_id"}, {Name: "date"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"booked_quantity": gorm.Expr("room_blocked_dates.booked_quantity + ?", quantity),
					"updated_at":      time.Now(),
				}),
			}).Create(&block).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func blockedDatesInRange(db *gorm.DB, roomID uint, checkIn, checkOut time.Time) ([]models.RoomBlockedDate, error) {
	// Dates are YYYY-MM-DD text, so lexicographic comparison is date order.
	var blocks []models.RoomBlockedDate
	err := db.Where("room_id = ? AND date >= ? AND date < ?",
		roomID, utils.FormatDate(checkIn), utils.FormatDate(checkOut)).Find(&blocks).Error
	return blocks, err
}
