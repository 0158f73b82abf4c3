package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/infoaniket1007/Tutor-app/handlers"
	"github.com/infoaniket1007/Tutor-app/middleware"
)

func TeacherRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	teacher := api.Group("/teacher", middleware.Protected(), middleware.TeacherRequired())
	teacher.Get("/profile", handlers.GetTeacherProfile)
	teacher.Put("/profile", handlers.UpdateTeacherProfile)
	teacher.Get("/appointments", handlers.GetTeacherAppointments)
	teacher.Get("/schedule", handlers.GetTeacherSchedule)
	teacher.Get("/ratings", handlers.GetTeacherRatings)
}
