package services

import (
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portal-romeiro-server/models"
)

// broadcastBatchSize is how many users the fan-out covers between cursor
// checkpoints. A crash loses at most one batch of progress, and the unique
// (notification_id, user_id) index makes replaying that batch a no-op.
const broadcastBatchSize = 500

// BroadcastResult is what the admin send endpoint reports back.
type BroadcastResult struct {
	UserCount  int `json:"userCount"`
	PushSent   int `json:"pushSent"`
	PushErrors int `json:"pushErrors"`
}

// InboxRows builds one batch of inbox copies for a notification. Each row
// snapshots the notification's content and carries the
// (notification_id, user_id) dedup key.
func InboxRows(notification *models.Notification, users []models.User) []models.UserNotification {
	rows := make([]models.UserNotification, 0, len(users))
	for _, user := range users {
		rows = append(rows, models.UserNotification{
			NotificationID: notification.ID,
			UserID:         user.ID,
			Title:          notification.Title,
			Body:           notification.Body,
			Type:           notification.Type,
			ActionURL:      notification.ActionURL,
		})
	}
	return rows
}

// NextCursor advances the fan-out cursor past a processed batch. An empty
// batch leaves the cursor where it was.
func NextCursor(cursor uint, users []models.User) uint {
	if len(users) == 0 {
		return cursor
	}
	return users[len(users)-1].ID
}

// RunBroadcast fans the notification out to every active user's inbox,
// resuming from the persisted cursor. Deactivated accounts are skipped; the
// returned count is the number of users this notification reached once the
// run completes.
func RunBroadcast(db *gorm.DB, notification *models.Notification) (int, error) {
	cursor := notification.BroadcastCursor

	for {
		var users []models.User
		if err := db.Where("id > ? AND is_active = ?", cursor, true).
			Order("id ASC").
			Limit(broadcastBatchSize).
			Find(&users).Error; err != nil {
			return 0, err
		}
		if len(users) == 0 {
			break
		}

		rows := InboxRows(notification, users)

		// DO NOTHING on the dedup key: users already covered by an earlier,
		// interrupted run keep their single inbox row.
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "notification_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(&rows).Error; err != nil {
			return 0, err
		}

		cursor = NextCursor(cursor, users)
		if err := db.Model(notification).Update("broadcast_cursor", cursor).Error; err != nil {
			return 0, err
		}
		notification.BroadcastCursor = cursor
	}

	if err := db.Model(notification).Update("broadcast_done", true).Error; err != nil {
		return 0, err
	}
	notification.BroadcastDone = true

	var covered int64
	if err := db.Model(&models.UserNotification{}).
		Where("notification_id = ?", notification.ID).
		Count(&covered).Error; err != nil {
		return 0, err
	}

	return int(covered), nil
}

// SendBroadcast marks the notification sent, runs the inbox fan-out and then
// dispatches pushes to every active device. Sent and SentAt are set once and
// never reverted; calling this again on an interrupted broadcast resumes the
// fan-out instead of duplicating it.
func SendBroadcast(db *gorm.DB, notification *models.Notification) (*BroadcastResult, error) {
	if !notification.Sent {
		now := time.Now()
		if err := db.Model(notification).Updates(map[string]interface{}{
			"sent":    true,
			"sent_at": now,
		}).Error; err != nil {
			return nil, err
		}
		notification.Sent = true
		notification.SentAt = &now
	}

	userCount, err := RunBroadcast(db, notification)
	if err != nil {
		return nil, err
	}

	var tokens []string
	if err := db.Model(&models.PushDevice{}).
		Where("active = ?", true).
		Pluck("token", &tokens).Error; err != nil {
		// The inbox fan-out completed; push failure does not fail the send.
		log.Printf("❌ Failed to load push devices for notification %d: %v", notification.ID, err)
		return &BroadcastResult{UserCount: userCount}, nil
	}

	pushSent, pushErrors := SendExpoPush(tokens, notification.Title, notification.Body, map[string]interface{}{
		"notification_id": notification.ID,
		"type":            notification.Type,
		"action_url":      notification.ActionURL,
	})

	return &BroadcastResult{
		UserCount:  userCount,
		PushSent:   pushSent,
		PushErrors: pushErrors,
	}, nil
}
