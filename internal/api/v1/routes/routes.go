// Package routes defines the API routes and URL structure
package routes

import (
	"fmt"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/taskboard/taskboard/internal/api/v1/handlers"
)

// API base configuration
const (
	// DefaultPort is the default port for the API
	DefaultPort = "8080"
	// APIv1Prefix is the prefix for all API endpoints
	APIv1Prefix = "/api/v1"
)

// DefaultBaseURL is the default base URL for the API
var DefaultBaseURL = fmt.Sprintf("http://localhost:%s", DefaultPort)

// Route names for lookup
const (
	HealthCheck = "HealthCheck"

	CreateProject      = "CreateProject"
	GetProjects        = "GetProjects"
	GetProjectByID     = "GetProjectByID"
	GetProjectsSummary = "GetProjectsSummary"

	CreateTask      = "CreateTask"
	GetProjectTasks = "GetProjectTasks"
	UpdateTask      = "UpdateTask"
	DeleteTask      = "DeleteTask"
)

// RegisterRoutes configures all the v1 routes.
//
// NOTE: route ordering matters because routes match in registration order.
// /projects/summary must be registered before /projects/:projectId or fiber
// will interpret "summary" as a project ID.
func RegisterRoutes(
	app *fiber.App,
	projectHandler *handlers.ProjectHandler,
	taskHandler *handlers.TaskHandler,
) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	}).Name(HealthCheck)

	v1 := app.Group(APIv1Prefix)

	projects := v1.Group("/projects")
	projects.Get("/", projectHandler.GetProjects).Name(GetProjects)
	projects.Get("/summary", projectHandler.GetProjectsSummary).Name(GetProjectsSummary)
	projects.Get("/:projectId", projectHandler.GetProjectByID).Name(GetProjectByID)
	projects.Get("/:projectId/tasks", taskHandler.GetProjectTasks).Name(GetProjectTasks)
	projects.Post("/", projectHandler.CreateProject).Name(CreateProject)
	projects.Post("/:projectId/tasks", taskHandler.CreateTask).Name(CreateTask)

	tasks := v1.Group("/tasks")
	tasks.Put("/:taskId", taskHandler.UpdateTask).Name(UpdateTask)
	tasks.Delete("/:taskId", taskHandler.DeleteTask).Name(DeleteTask)
}

// URL builders used by the API client

// ProjectsURL returns the endpoint for creating and listing projects
func ProjectsURL() string {
	return APIv1Prefix + "/projects"
}

// ProjectURL returns the endpoint for a single project
func ProjectURL(projectID uint) string {
	return fmt.Sprintf("%s/projects/%d", APIv1Prefix, projectID)
}

// ProjectTasksURL returns the endpoint for a project's tasks
func ProjectTasksURL(projectID uint) string {
	return fmt.Sprintf("%s/projects/%d/tasks", APIv1Prefix, projectID)
}

// ProjectsSummaryURL returns the endpoint for the projects summary
func ProjectsSummaryURL() string {
	return APIv1Prefix + "/projects/summary"
}

// TaskURL returns the endpoint for a single task
func TaskURL(taskID uint) string {
	return fmt.Sprintf("%s/tasks/%d", APIv1Prefix, taskID)
}
