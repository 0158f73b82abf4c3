package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/infoaniket1007/Tutor-app/models"
)

// CreateAppointment books a new pending appointment for a student. The
// teacher must resolve to an approved teacher account, and the requested
// slot must not clash with another live appointment of the same teacher.
func CreateAppointment(db *gorm.DB, studentID, teacherID uuid.UUID, date time.Time, timeOfDay, message string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := db.Transaction(func(tx *gorm.DB) error {
		var teacher models.User
		if err := tx.Where("id = ? AND role = ? AND is_approved = ?", teacherID, "teacher", true).
			First(&teacher).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownTeacher
			}
			return err
		}

		var clash int64
		if err := tx.Model(&models.Appointment{}).
			Where("teacher_id = ? AND date = ? AND time = ? AND status IN ?",
				teacherID, date, timeOfDay,
				[]models.AppointmentStatus{models.StatusPending, models.StatusApproved}).
			Count(&clash).Error; err != nil {
			return err
		}
		if clash > 0 {
			return ErrSlotTaken
		}

		appointment = models.Appointment{
			StudentID: studentID,
			TeacherID: teacherID,
			Date:      date,
			Time:      timeOfDay,
			Message:   message,
			Status:    models.StatusPending,
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// TransitionAppointment moves an appointment to a new status on behalf of
// its owning teacher. The lookup is scoped to the teacher, so an appointment
// that exists but belongs to someone else is reported exactly like one that
// does not exist. Moving to completed stamps CompletedAt and resets IsRated,
// including on a repeated completion.
func TransitionAppointment(db *gorm.DB, appointmentID, teacherID uuid.UUID, next models.AppointmentStatus) (*models.Appointment, error) {
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	var appointment models.Appointment
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND teacher_id = ?", appointmentID, teacherID).
			First(&appointment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAppointmentNotFound
			}
			return err
		}

		if !appointment.Status.CanTransitionTo(next) {
			return ErrInvalidTransition
		}

		appointment.Status = next
		if next == models.StatusCompleted {
			now := time.Now()
			appointment.CompletedAt = &now
			appointment.IsRated = false
		}
		return tx.Save(&appointment).Error
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("Student").First(&appointment, "id = ?", appointment.ID).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func ListForTeacher(db *gorm.DB, teacherID uuid.UUID) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := db.Preload("Student").
		Where("teacher_id = ?", teacherID).
		Order("date asc, time asc").
		Find(&appointments).Error
	return appointments, err
}

func ListForStudent(db *gorm.DB, studentID uuid.UUID) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := db.Preload("Teacher").
		Where("student_id = ?", studentID).
		Order("date asc, time asc").
		Find(&appointments).Error
	return appointments, err
}

// TeacherSchedule lists a teacher's upcoming approved appointments.
func TeacherSchedule(db *gorm.DB, teacherID uuid.UUID) ([]models.Appointment, error) {
	var appointments []models.Appointment
	today := time.Now().Format("2006-01-02")
	err := db.Preload("Student").
		Where("teacher_id = ? AND status = ? AND date >= ?", teacherID, models.StatusApproved, today).
		Order("date asc, time asc").
		Find(&appointments).Error
	return appointments, err
}
