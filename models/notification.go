package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification is a broadcast template created in the admin panel. Sent and
// SentAt are set once at broadcast time and never reverted. BroadcastCursor
// and BroadcastDone track the resumable fan-out: a crash mid-broadcast leaves
// Sent true and BroadcastDone false, and the broadcast job finishes the run
// from the cursor without duplicating inbox rows.
type Notification struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Title     string     `json:"title" gorm:"size:255;not null"`
	Body      string     `json:"body" gorm:"type:text;not null"`
	Type      string     `json:"type" gorm:"size:50;not null;default:'general'"` // general, news, event, alert
	ActionURL string     `json:"action_url" gorm:"size:512"`
	Sent      bool       `json:"sent" gorm:"default:false"`
	SentAt    *time.Time `json:"sent_at"`

	BroadcastCursor uint `json:"-" gorm:"default:0"`
	BroadcastDone   bool `json:"-" gorm:"default:false"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Notification) TableName() string {
	return "notifications"
}

// UserNotification is one user's inbox copy of a broadcast notification.
// The (notification_id, user_id) pair is unique; it is the dedup key that
// makes the fan-out idempotent.
type UserNotification struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	NotificationID uint   `json:"notification_id" gorm:"not null;uniqueIndex:idx_notification_user"`
	UserID         uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_notification_user;index"`
	Title          string `json:"title" gorm:"size:255;not null"`
	Body           string `json:"body" gorm:"type:text;not null"`
	Type           string `json:"type" gorm:"size:50;not null"`
	ActionURL      string `json:"action_url" gorm:"size:512"`
	Read           bool   `json:"read" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserNotification) TableName() string {
	return "user_notifications"
}

// PushDevice is an Expo push token registered by a device.
type PushDevice struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	UserID   uint   `json:"user_id" gorm:"not null;index"`
	Token    string `json:"token" gorm:"size:255;not null;unique"`
	Platform string `json:"platform" gorm:"size:20;not null"` // ios, android
	Active   bool   `json:"active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PushDevice) TableName() string {
	return "push_devices"
}

// NotificationCreate is the admin request payload for notification templates.
type NotificationCreate struct {
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body" binding:"required"`
	Type      string `json:"type"`
	ActionURL string `json:"action_url"`
}
