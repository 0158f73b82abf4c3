package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/infoaniket1007/Tutor-app/database"
	"github.com/infoaniket1007/Tutor-app/models"
	"github.com/infoaniket1007/Tutor-app/notifications"
)

// SendAppointmentReminders emails both parties of every approved appointment
// scheduled for tomorrow.
func SendAppointmentReminders() {
	log.Println("Running job: SendAppointmentReminders...")

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var upcoming []models.Appointment
	err := database.DB.
		Preload("Student").
		Preload("Teacher").
		Where("status = ? AND date = ?", models.StatusApproved, tomorrow).
		Find(&upcoming).Error
	if err != nil {
		log.Printf("Error checking for upcoming appointments: %v", err)
		return
	}

	if len(upcoming) == 0 {
		return
	}

	for _, appointment := range upcoming {
		emailSubject := "Reminder: Your Appointment is Tomorrow"
		emailBody := fmt.Sprintf(
			"<h1>Appointment Reminder</h1><p>Hi there,</p><p>This is a friendly reminder of your appointment tomorrow at %s between %s and %s.</p>",
			appointment.Time,
			appointment.Student.Name,
			appointment.Teacher.Name,
		)

		go notifications.SendEmail(appointment.Student.Name, appointment.Student.Email, emailSubject, emailBody)
		go notifications.SendEmail(appointment.Teacher.Name, appointment.Teacher.Email, emailSubject, emailBody)
	}

	log.Printf("Sent reminders for %d appointment(s).", len(upcoming))
}
