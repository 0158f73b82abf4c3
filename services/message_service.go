package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/infoaniket1007/Tutor-app/models"
)

// SendMessageToTeacher appends a message to the student's approved
// appointment with the given teacher. Without an approved appointment the
// student has no channel to the teacher.
func SendMessageToTeacher(db *gorm.DB, studentID, teacherID uuid.UUID, content string) (*models.Message, error) {
	var appointment models.Appointment
	err := db.Where("student_id = ? AND teacher_id = ? AND status = ?",
		studentID, teacherID, models.StatusApproved).
		Order("date asc, time asc").
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveAppointment
		}
		return nil, err
	}

	message := models.Message{
		AppointmentID: appointment.ID,
		SenderID:      studentID,
		Content:       content,
	}
	if err := db.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// SaveAppointmentMessage stores a message sent by either party of an
// approved appointment. Used by the websocket path, where the sender
// addresses the appointment directly.
func SaveAppointmentMessage(db *gorm.DB, appointmentID, senderID uuid.UUID, content string) (*models.Message, error) {
	var appointment models.Appointment
	err := db.Where("id = ? AND (student_id = ? OR teacher_id = ?) AND status = ?",
		appointmentID, senderID, senderID, models.StatusApproved).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	message := models.Message{
		AppointmentID: appointment.ID,
		SenderID:      senderID,
		Content:       content,
	}
	if err := db.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// AppointmentMessages lists an appointment's messages for one of its
// participants, oldest first. Non-participants get the not-found error.
func AppointmentMessages(db *gorm.DB, appointmentID, requesterID uuid.UUID) ([]models.Message, error) {
	var appointment models.Appointment
	err := db.Where("id = ? AND (student_id = ? OR teacher_id = ?)",
		appointmentID, requesterID, requesterID).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	var messages []models.Message
	err = db.Preload("Sender").
		Where("appointment_id = ?", appointmentID).
		Order("created_at asc").
		Find(&messages).Error
	return messages, err
}
