package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/infoaniket1007/Tutor-app/database"
	"github.com/infoaniket1007/Tutor-app/models"
)

func GetAllTeachers(c *fiber.Ctx) error {
	var teachers []models.User
	err := database.DB.
		Preload("Ratings.Student").
		Where("role = ?", "teacher").
		Order("created_at desc").
		Find(&teachers).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching teachers", "error": err.Error()})
	}
	return c.JSON(teachers)
}

func GetAllStudents(c *fiber.Ctx) error {
	var students []models.User
	err := database.DB.
		Where("role = ?", "student").
		Order("created_at desc").
		Find(&students).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching students", "error": err.Error()})
	}
	return c.JSON(students)
}

func GetPendingStudents(c *fiber.Ctx) error {
	var students []models.User
	err := database.DB.
		Where("role = ? AND is_approved = ?", "student", false).
		Order("created_at desc").
		Find(&students).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching pending students", "error": err.Error()})
	}
	return c.JSON(students)
}

type AddTeacherRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Department string `json:"department" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
}

func addTeacherDetails(req AddTeacherRequest) fiber.Map {
	details := fiber.Map{}
	if req.Name == "" {
		details["name"] = "Name is required"
	}
	if req.Email == "" {
		details["email"] = "Email is required"
	}
	if req.Password == "" {
		details["password"] = "Password is required"
	}
	if req.Department == "" {
		details["department"] = "Department is required"
	}
	if req.Subject == "" {
		details["subject"] = "Subject is required"
	}
	return details
}

func AddTeacher(c *fiber.Ctx) error {
	var req AddTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	if details := addTeacherDetails(req); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "All fields are required",
			"details": details,
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error adding teacher"})
	}

	teacher := models.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hashedPassword),
		Role:       "teacher",
		Department: req.Department,
		Subject:    req.Subject,
		IsApproved: true,
	}

	if err := database.DB.Create(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Teacher with this email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error adding teacher", "error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Teacher added successfully",
		"teacher": teacher,
	})
}

func DeleteTeacher(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Teacher not found"})
	}

	result := database.DB.Where("id = ? AND role = ?", teacherID, "teacher").Delete(&models.User{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error deleting teacher", "error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Teacher not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Teacher deleted successfully"})
}

func ApproveStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Student not found"})
	}

	var student models.User
	if err := database.DB.Where("id = ? AND role = ?", studentID, "student").First(&student).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Student not found"})
	}

	student.IsApproved = true
	if err := database.DB.Save(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error approving student", "error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student approved successfully",
		"student": student,
	})
}
