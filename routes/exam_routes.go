package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rahulmehra21/campus_backend/handlers"
	"github.com/rahulmehra21/campus_backend/middleware"
)

func ExamRoutes(app *fiber.App) {
	exam := app.Group("/api/v1/exam", middleware.Protected())

	exam.Post("/question/add", middleware.FacultyRequired(), handlers.CreateQuestion)
	exam.Get("/questions/:subjectId", handlers.ListQuestions)

	exam.Post("/paper/generate", middleware.FacultyRequired(), handlers.GeneratePaper)
	exam.Get("/paper/:paperId", handlers.GetPaper)

	exam.Post("/attempt/submit", middleware.StudentRequired(), handlers.SubmitAttempt)
	exam.Post("/attempt/grade", middleware.FacultyRequired(), handlers.GradeAttempt)

	exam.Post("/eligibility/check/:studentId/:semester", middleware.StaffRequired(), handlers.CheckEligibility)
	exam.Post("/marksheet/generate", middleware.StaffRequired(), handlers.GenerateMarksheet)
}
