package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/infoaniket1007/Tutor-app/database"
	"github.com/infoaniket1007/Tutor-app/models"
	"github.com/infoaniket1007/Tutor-app/services"
)

// GetTeacherProfile returns the teacher's profile with the materialized
// aggregate and the ratings behind it, rater names included.
func GetTeacherProfile(c *fiber.Ctx) error {
	var teacher models.User
	err := database.DB.
		Preload("Ratings", func(db *gorm.DB) *gorm.DB {
			return db.Order("ratings.created_at desc")
		}).
		Preload("Ratings.Student").
		First(&teacher, "id = ? AND role = ?", currentUserID(c), "teacher").Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Teacher profile not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"name":          teacher.Name,
			"email":         teacher.Email,
			"department":    teacher.Department,
			"subject":       teacher.Subject,
			"averageRating": teacher.AverageRating,
			"totalRatings":  teacher.TotalRatings,
			"ratings":       teacher.Ratings,
		},
	})
}

type UpdateTeacherProfileRequest struct {
	Name              *string `json:"name"`
	Department        *string `json:"department"`
	Subject           *string `json:"subject"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

func UpdateTeacherProfile(c *fiber.Ctx) error {
	var teacher models.User
	if err := database.DB.First(&teacher, "id = ?", currentUserID(c)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Teacher not found"})
	}

	var req UpdateTeacherProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}

	if req.Name != nil {
		teacher.Name = *req.Name
	}
	if req.Department != nil {
		teacher.Department = *req.Department
	}
	if req.Subject != nil {
		teacher.Subject = *req.Subject
	}
	if req.ProfilePictureURL != nil {
		teacher.ProfilePictureURL = req.ProfilePictureURL
	}

	if err := database.DB.Save(&teacher).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error updating profile", "error": err.Error()})
	}
	return c.JSON(teacher)
}

// GetTeacherSchedule lists the teacher's upcoming approved appointments.
func GetTeacherSchedule(c *fiber.Ctx) error {
	schedule, err := services.TeacherSchedule(database.DB, currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching schedule", "error": err.Error()})
	}
	return c.JSON(schedule)
}

func GetTeacherRatings(c *fiber.Ctx) error {
	ratings, err := services.TeacherRatings(database.DB, currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error fetching ratings",
			"error":   err.Error(),
		})
	}
	return c.JSON(ratings)
}
