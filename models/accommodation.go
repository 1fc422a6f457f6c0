package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Accommodation is a lodging listing (hotel, pousada or hostel). Basic
// listings are free-tier directory entries with no bookable rooms; they are
// returned by search regardless of the requested date range.
type Accommodation struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Name         string  `json:"name" gorm:"size:255;not null"`
	Type         string  `json:"type" gorm:"size:50;not null"` // hotel, pousada, hostel
	Description  string  `json:"description" gorm:"type:text"`
	Address      string  `json:"address" gorm:"size:255"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	CheckInTime  string  `json:"check_in_time" gorm:"size:10"`  // "14:00"
	CheckOutTime string  `json:"check_out_time" gorm:"size:10"` // "12:00"
	Amenities    pq.StringArray `json:"amenities" gorm:"type:text[]"` // wifi, parking, breakfast, ...
	Phone        string  `json:"phone" gorm:"size:30"`
	Whatsapp     string  `json:"whatsapp" gorm:"size:30"`
	ImageURL     string  `json:"image_url" gorm:"size:512"`

	// Rating is the mean of approved reviews rounded to 1 decimal, stored as
	// text; nil when the accommodation has no approved reviews.
	Rating       *string `json:"rating" gorm:"type:varchar(8)"`
	ReviewsCount int     `json:"reviews_count" gorm:"default:0"`

	Featured  bool `json:"featured" gorm:"default:false"`
	Published bool `json:"published" gorm:"default:false"`
	Basic     bool `json:"basic" gorm:"default:false"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:AccommodationID;constraint:OnDelete:CASCADE"`
}

func (Accommodation) TableName() string {
	return "accommodations"
}

// Room is a bookable room type within an accommodation. Quantity counts the
// physically identical units of this type; values <= 0 are treated as 1.
type Room struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	AccommodationID uint   `json:"accommodation_id" gorm:"not null;index"`
	Name            string `json:"name" gorm:"size:255;not null"`
	MaxGuests       int    `json:"max_guests" gorm:"default:2"`
	Beds            string `json:"beds" gorm:"size:255"` // e.g. "1 casal, 2 solteiro"
	PricePerNight   int    `json:"price_per_night" gorm:"not null"` // integer cents
	Quantity        int    `json:"quantity" gorm:"default:1"`
	Published       bool   `json:"published" gorm:"default:true"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Room) TableName() string {
	return "rooms"
}

// EffectiveQuantity returns the usable unit count for availability checks.
func (r *Room) EffectiveQuantity() int {
	if r.Quantity <= 0 {
		return 1
	}
	return r.Quantity
}

// RoomBlockedDate consumes part of a room type's capacity on one calendar
// day. Date is stored as plain YYYY-MM-DD text. The (room_id, date) pair is
// unique and blocking the same day again adds to BookedQuantity, so each day
// carries one aggregate row; the availability checker still sums per day and
// stays correct against pre-migration duplicate rows.
type RoomBlockedDate struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	RoomID         uint   `json:"room_id" gorm:"not null;uniqueIndex:idx_room_date"`
	Date           string `json:"date" gorm:"type:varchar(10);not null;uniqueIndex:idx_room_date"` // YYYY-MM-DD
	BookedQuantity int    `json:"booked_quantity" gorm:"not null;default:1"`
	Reason         string `json:"reason" gorm:"size:255"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RoomBlockedDate) TableName() string {
	return "room_blocked_dates"
}

// AccommodationCreate is the request payload for creating or updating an
// accommodation through the admin panel.
type AccommodationCreate struct {
	Name         string   `json:"name" binding:"required"`
	Type         string   `json:"type" binding:"required,oneof=hotel pousada hostel"`
	Description  string   `json:"description"`
	Address      string   `json:"address"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	CheckInTime  string   `json:"check_in_time"`
	CheckOutTime string   `json:"check_out_time"`
	Amenities    []string `json:"amenities"`
	Phone        string   `json:"phone"`
	Whatsapp     string   `json:"whatsapp"`
	ImageURL     string   `json:"image_url"`
	Featured     bool     `json:"featured"`
	Published    bool     `json:"published"`
	Basic        bool     `json:"basic"`
}

// RoomCreate is the request payload for creating or updating a room.
type RoomCreate struct {
	Name          string `json:"name" binding:"required"`
	MaxGuests     int    `json:"max_guests" binding:"required,min=1"`
	Beds          string `json:"beds"`
	PricePerNight int    `json:"price_per_night" binding:"required,min=0"`
	Quantity      int    `json:"quantity" binding:"min=0"`
	Published     *bool  `json:"published"`
}

// RoomBlockCreate is the request payload for consuming room capacity on a
// date range (manual block or externally-confirmed reservation).
type RoomBlockCreate struct {
	CheckIn  string `json:"check_in" binding:"required"`  // YYYY-MM-DD, inclusive
	CheckOut string `json:"check_out" binding:"required"` // YYYY-MM-DD, exclusive
	Quantity int    `json:"quantity" binding:"min=1"`
	Reason   string `json:"reason"`
}
