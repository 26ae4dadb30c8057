package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rahulmehra21/campus_backend/handlers"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/v1/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)
}
