// Package handlers provides HTTP request handling for the v1 API
package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/internal/logger"
	"github.com/taskboard/taskboard/internal/services"
	"github.com/taskboard/taskboard/pkg/types"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	service *services.Project
}

// NewProjectHandler creates a new project handler instance
func NewProjectHandler(s *services.Project) *ProjectHandler {
	return &ProjectHandler{service: s}
}

// CreateProject handles the request to create a new project
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req types.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(errInvalidInput(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(errInvalidInput(err.Error()))
	}

	resp, err := h.service.CreateProject(c.Context(), &req)
	if err != nil {
		logger.Errorf("create project: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError,
			"An error occurred while creating the project")
	}

	return c.Status(resp.Status).JSON(resp)
}

// GetProjects handles the request to list projects
func (h *ProjectHandler) GetProjects(c *fiber.Ctx) error {
	page := c.QueryInt("page", models.DefaultPage)
	size := c.QueryInt("size", models.DefaultPageSize)

	resp, err := h.service.GetProjects(c.Context(), getPaginationOptions(page, size))
	if err != nil {
		logger.Errorf("list projects: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError,
			"An error occurred while getting the projects")
	}

	return c.Status(resp.Status).JSON(resp)
}

// GetProjectByID handles the request to fetch a single project
func (h *ProjectHandler) GetProjectByID(c *fiber.Ctx) error {
	projectID, err := c.ParamsInt("projectId")
	if err != nil || projectID < 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(errInvalidInput("invalid project id"))
	}

	resp, err := h.service.GetProjectByID(c.Context(), uint(projectID))
	if err != nil {
		logger.Errorf("get project by id: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError,
			"An error occurred while getting project by id")
	}

	return c.Status(resp.Status).JSON(resp)
}

// GetProjectsSummary handles the request to summarize every project's tasks
// by distinct status
func (h *ProjectHandler) GetProjectsSummary(c *fiber.Ctx) error {
	summaries, err := h.service.GetProjectsSummary(c.Context())
	if err != nil {
		logger.Errorf("projects summary: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError,
			"An error occurred while getting projects summary")
	}

	return c.JSON(summaries)
}
