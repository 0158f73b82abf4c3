package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      string    `gorm:"size:255;not null;unique" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	Role       string    `gorm:"size:20;not null;default:'student'" json:"role"`
	Department string    `gorm:"size:100" json:"department"`
	Subject    string    `gorm:"size:100" json:"subject,omitempty"`
	RollNumber string    `gorm:"size:50" json:"roll_number,omitempty"`

	// Students register unapproved and cannot log in until an admin
	// approves them. Teachers and admins are created approved.
	IsApproved bool `gorm:"not null;default:false" json:"is_approved"`

	ProfilePictureURL *string `gorm:"size:255" json:"profile_picture_url,omitempty"`

	AverageRating float64  `gorm:"not null;default:0" json:"average_rating"`
	TotalRatings  int      `gorm:"not null;default:0" json:"total_ratings"`
	Ratings       []Rating `gorm:"foreignkey:TeacherID" json:"ratings,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
