package jobs

import (
	"log"
	"time"

	"portal-romeiro-server/database"
	"portal-romeiro-server/models"
	"portal-romeiro-server/services"
)

// BroadcastJob finishes notification fan-outs that a crash or restart left
// half-done. A broadcast that died mid-run has sent = true and broadcast_done
// = false; the job resumes it from the persisted cursor. Pushes went out (or
// were attempted) during the original send, so the job only completes the
// inbox fan-out and never re-dispatches pushes.
type BroadcastJob struct {
	stopChan chan bool
}

// NewBroadcastJob creates a new broadcast recovery job
func NewBroadcastJob() *BroadcastJob {
	return &BroadcastJob{
		stopChan: make(chan bool),
	}
}

// Start begins the broadcast recovery job
func (j *BroadcastJob) Start() {
	go j.run()
	log.Println("🚀 Broadcast recovery job started")
}

// Stop stops the broadcast recovery job
func (j *BroadcastJob) Stop() {
	j.stopChan <- true
	log.Println("🛑 Broadcast recovery job stopped")
}

func (j *BroadcastJob) run() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.resumeInterruptedBroadcasts()
		case <-j.stopChan:
			return
		}
	}
}

// resumeInterruptedBroadcasts finds broadcasts left incomplete and finishes
// their fan-out. The grace window keeps the job from racing a send that is
// still running in the request handler.
func (j *BroadcastJob) resumeInterruptedBroadcasts() {
	var interrupted []models.Notification

	cutoff := time.Now().Add(-5 * time.Minute)
	err := database.DB.
		Where("sent = ? AND broadcast_done = ? AND sent_at <= ?", true, false, cutoff).
		Find(&interrupted).Error
	if err != nil {
		log.Printf("❌ Error checking for interrupted broadcasts: %v", err)
		return
	}

	if len(interrupted) == 0 {
		return
	}

	log.Printf("⏰ Found %d interrupted broadcasts", len(interrupted))

	for i := range interrupted {
		notification := &interrupted[i]
		userCount, err := services.RunBroadcast(database.DB, notification)
		if err != nil {
			log.Printf("❌ Failed to resume broadcast %d: %v", notification.ID, err)
			continue
		}
		log.Printf("✅ Broadcast %d resumed and completed, %d users covered", notification.ID, userCount)
	}
}
