package jobs

import (
	"log"
	"time"

	"github.com/infoaniket1007/Tutor-app/database"
	"github.com/infoaniket1007/Tutor-app/models"
)

// ExpireStalePendingAppointments cancels pending appointments whose date has
// passed without the teacher acting on them.
func ExpireStalePendingAppointments() {
	log.Println("Running job: ExpireStalePendingAppointments...")

	today := time.Now().Format("2006-01-02")

	result := database.DB.Model(&models.Appointment{}).
		Where("status = ? AND date < ?", models.StatusPending, today).
		Update("status", models.StatusCancelled)
	if result.Error != nil {
		log.Printf("Error expiring stale appointments: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Cancelled %d stale pending appointment(s).", result.RowsAffected)
	}
}
