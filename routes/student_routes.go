package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/infoaniket1007/Tutor-app/handlers"
	"github.com/infoaniket1007/Tutor-app/middleware"
)

func StudentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	student := api.Group("/student", middleware.Protected(), middleware.StudentRequired())
	student.Get("/profile", handlers.GetStudentProfile)
	student.Put("/profile", handlers.UpdateStudentProfile)
	student.Get("/teachers", handlers.GetAvailableTeachers)
	student.Get("/appointments", handlers.GetStudentAppointments)
	student.Post("/messages", handlers.SendMessage)
	student.Post("/ratings", handlers.SubmitStudentRating)
}
