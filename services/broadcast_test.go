package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-romeiro-server/models"
)

func broadcastUsers(ids ...uint) []models.User {
	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, models.User{ID: id, IsActive: true})
	}
	return users
}

func TestInboxRowsCopyNotificationContent(t *testing.T) {
	notification := &models.Notification{
		ID:        9,
		Title:     "Programação da Festa",
		Body:      "Confira a programação completa da romaria.",
		Type:      "event",
		ActionURL: "/news/12",
	}
	users := broadcastUsers(1, 2, 3)

	rows := InboxRows(notification, users)
	require.Len(t, rows, len(users), "one inbox row per user")

	for i, row := range rows {
		assert.Equal(t, notification.ID, row.NotificationID)
		assert.Equal(t, users[i].ID, row.UserID)
		assert.Equal(t, notification.Title, row.Title)
		assert.Equal(t, notification.Body, row.Body)
		assert.Equal(t, notification.Type, row.Type)
		assert.Equal(t, notification.ActionURL, row.ActionURL)
		assert.False(t, row.Read, "inbox rows start unread")
	}
}

func TestInboxRowsEmptyBatch(t *testing.T) {
	notification := &models.Notification{ID: 9, Title: "Aviso", Body: "corpo"}
	assert.Empty(t, InboxRows(notification, nil))
}

func TestNextCursorAdvancesToLastUser(t *testing.T) {
	assert.Equal(t, uint(30), NextCursor(0, broadcastUsers(10, 20, 30)))
	assert.Equal(t, uint(31), NextCursor(30, broadcastUsers(31)))
}

func TestNextCursorUnchangedOnEmptyBatch(t *testing.T) {
	assert.Equal(t, uint(42), NextCursor(42, nil))
}

// Walking all users in cursor batches must cover each user exactly once and
// land the cursor on the last user, so a run interrupted between batches can
// pick up where it stopped.
func TestCursorWalkCoversEachUserOnce(t *testing.T) {
	notification := &models.Notification{ID: 5, Title: "Aviso", Body: "corpo", Type: "general"}
	all := broadcastUsers(1, 3, 7, 8, 12, 19, 25)
	batchSize := 3

	var cursor uint
	seen := make(map[uint]int)

	for {
		// Same walk the fan-out query does: active users past the cursor,
		// ascending by id, one batch at a time.
		var batch []models.User
		for _, user := range all {
			if user.ID > cursor && len(batch) < batchSize {
				batch = append(batch, user)
			}
		}
		if len(batch) == 0 {
			break
		}

		for _, row := range InboxRows(notification, batch) {
			seen[row.UserID]++
		}
		cursor = NextCursor(cursor, batch)
	}

	require.Len(t, seen, len(all))
	for _, user := range all {
		assert.Equal(t, 1, seen[user.ID], "user %d delivered exactly once", user.ID)
	}
	assert.Equal(t, uint(25), cursor)
}

// Resuming from a mid-run cursor must reach exactly the users the first run
// did not, never re-covering delivered ones.
func TestCursorResumeSkipsDeliveredUsers(t *testing.T) {
	notification := &models.Notification{ID: 5, Title: "Aviso", Body: "corpo"}
	all := broadcastUsers(2, 4, 6, 9, 11)

	// First run stopped after the batch ending at user 6.
	firstBatch := all[:3]
	cursor := NextCursor(0, firstBatch)
	require.Equal(t, uint(6), cursor)

	var remaining []models.User
	for _, user := range all {
		if user.ID > cursor {
			remaining = append(remaining, user)
		}
	}

	rows := InboxRows(notification, remaining)
	require.Len(t, rows, 2)
	assert.Equal(t, uint(9), rows[0].UserID)
	assert.Equal(t, uint(11), rows[1].UserID)
}
