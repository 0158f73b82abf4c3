package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/infoaniket1007/Tutor-app/database"
	"github.com/infoaniket1007/Tutor-app/models"
	"github.com/infoaniket1007/Tutor-app/services"
	"github.com/infoaniket1007/Tutor-app/websocket"
)

func GetStudentProfile(c *fiber.Ctx) error {
	var student models.User
	if err := database.DB.First(&student, "id = ?", currentUserID(c)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student not found"})
	}
	return c.JSON(student)
}

type UpdateStudentProfileRequest struct {
	Name              *string `json:"name"`
	Department        *string `json:"department"`
	RollNumber        *string `json:"roll_number"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

func UpdateStudentProfile(c *fiber.Ctx) error {
	var student models.User
	if err := database.DB.First(&student, "id = ?", currentUserID(c)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student not found"})
	}

	var req UpdateStudentProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Department != nil {
		student.Department = *req.Department
	}
	if req.RollNumber != nil {
		student.RollNumber = *req.RollNumber
	}
	if req.ProfilePictureURL != nil {
		student.ProfilePictureURL = req.ProfilePictureURL
	}

	if err := database.DB.Save(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error updating profile", "error": err.Error()})
	}
	return c.JSON(student)
}

// GetAvailableTeachers is the teacher directory students book from.
func GetAvailableTeachers(c *fiber.Ctx) error {
	var teachers []models.User
	err := database.DB.
		Select("id", "name", "department", "subject", "average_rating", "total_ratings").
		Where("role = ? AND is_approved = ?", "teacher", true).
		Order("name asc").
		Find(&teachers).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching teachers", "error": err.Error()})
	}
	return c.JSON(teachers)
}

type SendMessageRequest struct {
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
	Message   string `json:"message" validate:"required"`
}

func SendMessage(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	teacherID, _ := uuid.Parse(req.TeacherID)
	message, err := services.SendMessageToTeacher(database.DB, studentID, teacherID, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveAppointment) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No active appointment found with this teacher"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error sending message", "error": err.Error()})
	}

	websocket.Broadcast <- message

	return c.JSON(fiber.Map{"message": "Message sent successfully"})
}

type StudentRatingRequest struct {
	AppointmentID string `json:"appointment_id" validate:"required,uuid"`
	Score         int    `json:"score" validate:"required,min=1,max=5"`
	Feedback      string `json:"feedback"`
}

// SubmitStudentRating is the second rating entry point, reached from the
// student dashboard with the appointment id in the body. It shares the
// eligibility policy of SubmitRating.
func SubmitStudentRating(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var req StudentRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	appointmentID, _ := uuid.Parse(req.AppointmentID)
	rating, err := services.SubmitRating(database.DB, appointmentID, studentID, req.Score, req.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotEligible):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No completed appointment found"})
		case errors.Is(err, services.ErrDuplicateRating):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "You have already rated this appointment"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error submitting rating"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Rating submitted successfully",
		"rating":  rating,
	})
}
