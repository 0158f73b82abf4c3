package models

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// statusTransitions is the full set of legal moves. Completed and cancelled
// are terminal, except that re-marking a completed appointment as completed
// is allowed: it re-stamps CompletedAt and re-arms rating eligibility.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusApproved, StatusCancelled},
	StatusApproved:  {StatusCompleted},
	StatusCompleted: {StatusCompleted},
	StatusCancelled: {},
}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID         `gorm:"not null;index" json:"student_id"`
	TeacherID uuid.UUID         `gorm:"not null;index" json:"teacher_id"`
	Date      time.Time         `gorm:"type:date;not null" json:"date"`
	Time      string            `gorm:"size:5;not null" json:"time"`
	Message   string            `gorm:"type:text" json:"message,omitempty"`
	Status    AppointmentStatus `gorm:"size:20;not null;default:'pending'" json:"status"`

	// CompletedAt is set only on completion. IsRated is meaningful only
	// once completed and never reverts except through re-completion.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	IsRated     bool       `gorm:"not null;default:false" json:"is_rated"`

	Student User `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Teacher User `gorm:"foreignkey:TeacherID" json:"teacher,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
