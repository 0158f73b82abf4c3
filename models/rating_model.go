package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating is immutable once created. The unique index on AppointmentID is the
// storage-level backstop for the one-rating-per-appointment rule.
type Rating struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID `gorm:"not null;unique" json:"appointment_id"`
	StudentID     uuid.UUID `gorm:"not null" json:"student_id"`
	TeacherID     uuid.UUID `gorm:"not null;index" json:"teacher_id"`
	Score         int       `gorm:"not null" json:"score"`
	Feedback      string    `gorm:"type:text" json:"feedback"`

	Appointment Appointment `gorm:"foreignkey:AppointmentID" json:"-"`
	Student     User        `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Teacher     User        `gorm:"foreignkey:TeacherID" json:"teacher,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
