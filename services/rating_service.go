package services

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/infoaniket1007/Tutor-app/models"
)

// roundAverage keeps teacher averages at one fractional digit.
func roundAverage(avg float64) float64 {
	return math.Round(avg*10) / 10
}

// SubmitRating attaches a rating to a completed appointment and refreshes
// the teacher's aggregate. The IsRated flip is a conditional update, so of
// two concurrent submissions for the same appointment exactly one wins; the
// loser fails the same way an ineligible caller does. The teacher row is
// locked before the recompute, serializing aggregate updates per teacher.
func SubmitRating(db *gorm.DB, appointmentID, studentID uuid.UUID, score int, feedback string) (*models.Rating, error) {
	var rating models.Rating
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Appointment{}).
			Where("id = ? AND student_id = ? AND status = ? AND is_rated = ?",
				appointmentID, studentID, models.StatusCompleted, false).
			Update("is_rated", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotEligible
		}

		var appointment models.Appointment
		if err := tx.First(&appointment, "id = ?", appointmentID).Error; err != nil {
			return err
		}

		// Teacher id comes from the appointment row, never from the caller.
		rating = models.Rating{
			AppointmentID: appointmentID,
			StudentID:     studentID,
			TeacherID:     appointment.TeacherID,
			Score:         score,
			Feedback:      feedback,
		}
		if err := tx.Create(&rating).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateRating
			}
			return err
		}

		var teacher models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&teacher, "id = ?", appointment.TeacherID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownTeacher
			}
			return err
		}

		// Full recompute over the teacher's ratings, not an incremental
		// update.
		var agg struct {
			Avg   float64
			Total int64
		}
		if err := tx.Model(&models.Rating{}).
			Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS total").
			Where("teacher_id = ?", teacher.ID).
			Scan(&agg).Error; err != nil {
			return err
		}

		teacher.AverageRating = roundAverage(agg.Avg)
		teacher.TotalRatings = int(agg.Total)
		return tx.Save(&teacher).Error
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("Student").Preload("Teacher").First(&rating, "id = ?", rating.ID).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// TeacherRatings lists a teacher's ratings, newest first, with rater names.
func TeacherRatings(db *gorm.DB, teacherID uuid.UUID) ([]models.Rating, error) {
	var ratings []models.Rating
	err := db.Preload("Student").
		Where("teacher_id = ?", teacherID).
		Order("created_at desc").
		Find(&ratings).Error
	return ratings, err
}
