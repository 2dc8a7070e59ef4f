// Package app assembles the Fiber application
package app

import (
	fiber "github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard/internal/api/v1/handlers"
	"github.com/taskboard/taskboard/internal/api/v1/middleware"
	v1 "github.com/taskboard/taskboard/internal/api/v1/routes"
	"github.com/taskboard/taskboard/internal/db/repos"
	"github.com/taskboard/taskboard/internal/services"
)

// New builds the Fiber app with all middleware, services and routes wired
func New(database *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(middleware.Logger())

	projectRepo := repos.NewProjectRepository(database)
	taskRepo := repos.NewTaskRepository(database)

	projectService := services.NewProjectService(projectRepo, taskRepo)

	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(projectService)

	v1.RegisterRoutes(app, projectHandler, taskHandler)

	return app
}

// errorHandler maps unhandled faults to a JSON server-error response
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"message": err.Error(),
		"status":  code,
	})
}
