package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/infoaniket1007/Tutor-app/database"
	"github.com/infoaniket1007/Tutor-app/models"
	"github.com/infoaniket1007/Tutor-app/services"
)

type CreateAppointmentRequest struct {
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
	Message   string `json:"message,omitempty"`
}

func CreateAppointment(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var req CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON", "error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid appointment request", "error": err.Error()})
	}

	teacherID, _ := uuid.Parse(req.TeacherID)
	date, _ := time.Parse("2006-01-02", req.Date)

	if _, err := services.CreateAppointment(database.DB, studentID, teacherID, date, req.Time, req.Message); err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownTeacher):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Teacher not found", "error": err.Error()})
		case errors.Is(err, services.ErrSlotTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "This time slot is already booked", "error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error creating appointment", "error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Appointment requested successfully"})
}

func GetTeacherAppointments(c *fiber.Ctx) error {
	appointments, err := services.ListForTeacher(database.DB, currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error fetching appointments",
			"error":   err.Error(),
		})
	}
	return c.JSON(appointments)
}

func GetStudentAppointments(c *fiber.Ctx) error {
	appointments, err := services.ListForStudent(database.DB, currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching appointments",
			"error":   err.Error(),
		})
	}
	return c.JSON(appointments)
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func UpdateAppointmentStatus(c *fiber.Ctx) error {
	teacherID := currentUserID(c)

	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Appointment not found"})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	appointment, err := services.TransitionAppointment(database.DB, appointmentID, teacherID, models.AppointmentStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAppointmentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Appointment not found"})
		case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrInvalidTransition):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error updating appointment"})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Appointment status updated successfully",
		"appointment": appointment,
	})
}

type SubmitRatingRequest struct {
	Score    int    `json:"score" validate:"required,min=1,max=5"`
	Feedback string `json:"feedback"`
}

func SubmitRating(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Eligible appointment not found for rating. Please ensure the appointment is completed and not already rated.",
		})
	}

	var req SubmitRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	rating, err := services.SubmitRating(database.DB, appointmentID, studentID, req.Score, req.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotEligible):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Eligible appointment not found for rating. Please ensure the appointment is completed and not already rated.",
			})
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

func GetAppointmentMessages(c *fiber.Ctx) error {
	requesterID := currentUserID(c)

	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Appointment not found"})
	}

	messages, err := services.AppointmentMessages(database.DB, appointmentID, requesterID)
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Appointment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching messages", "error": err.Error()})
	}

	return c.JSON(messages)
}
