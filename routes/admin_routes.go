package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/infoaniket1007/Tutor-app/handlers"
	"github.com/infoaniket1007/Tutor-app/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/teachers", handlers.GetAllTeachers)
	admin.Post("/teachers", handlers.AddTeacher)
	admin.Delete("/teachers/:id", handlers.DeleteTeacher)
	admin.Get("/students", handlers.GetAllStudents)
	admin.Get("/students/pending", handlers.GetPendingStudents)
	admin.Put("/students/:id/approve", handlers.ApproveStudent)
}
