package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/infoaniket1007/Tutor-app/handlers"
	"github.com/infoaniket1007/Tutor-app/middleware"
)

func AppointmentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	appointments := api.Group("/appointments", middleware.Protected())
	appointments.Post("", middleware.StudentRequired(), handlers.CreateAppointment)
	appointments.Put("/:id/status", middleware.TeacherRequired(), handlers.UpdateAppointmentStatus)
	appointments.Post("/:id/rating", middleware.StudentRequired(), handlers.SubmitRating)
	appointments.Get("/:id/messages", handlers.GetAppointmentMessages)
}
