package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/internal/logger"
	"github.com/taskboard/taskboard/internal/services"
	"github.com/taskboard/taskboard/pkg/types"
)

// TaskHandler handles HTTP requests for task operations
type TaskHandler struct {
	service *services.Project
}

// NewTaskHandler creates a new task handler instance
func NewTaskHandler(s *services.Project) *TaskHandler {
	return &TaskHandler{service: s}
}

// CreateTask handles the request to create a task under a project
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	projectID, err := c.ParamsInt("projectId")
	if err != nil || projectID < 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(errInvalidInput("invalid project id"))
	}

	var req types.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(errInvalidInput(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(errInvalidInput(err.Error()))
	}

	resp, err := h.service.CreateProjectTask(c.Context(), uint(projectID), &req)
	if err != nil {
		logger.Errorf("create task: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError,
			"An error occurred while creating the task")
	}

	return c.Status(resp.Status).JSON(resp)
}

// GetProjectTasks handles the request to list a project's tasks with optional
// due-date and status filters
func (h *TaskHandler) GetProjectTasks(c *fiber.Ctx) error {
	projectID, err := c.ParamsInt("projectId")
	if err != nil || projectID < 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(errInvalidInput("invalid project id"))
	}

	var filters models.TaskFilters
	if raw := c.Query("dueDate"); raw != "" {
		dueDate, err := models.ParseDateOnly(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(errInvalidInput(err.Error()))
		}
		filters.DueDate = &dueDate
	}
	if status := c.Query("status"); status != "" {
		filters.Status = &status
	}

	page := c.QueryInt("page", models.DefaultPage)
	size := c.QueryInt("size", models.DefaultPageSize)

	resp, err := h.service.GetProjectTasks(c.Context(), uint(projectID), filters, getPaginationOptions(page, size))
	if err != nil {
		logger.Errorf("list project tasks: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError,
			"An error occurred while getting project tasks")
	}

	return c.Status(resp.Status).JSON(resp)
}

// UpdateTask handles the request to partially update a task. Empty or absent
// fields leave the stored values untouched.
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	taskID, err := c.ParamsInt("taskId")
	if err != nil || taskID < 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(errInvalidInput("invalid task id"))
	}

	var req types.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(errInvalidInput(err.Error()))
	}

	resp, err := h.service.UpdateTask(c.Context(), uint(taskID), &req)
	if err != nil {
		logger.Errorf("update task: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError,
			"An error occurred while updating the task")
	}

	return c.Status(resp.Status).JSON(resp)
}

// DeleteTask handles the request to delete a task
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	taskID, err := c.ParamsInt("taskId")
	if err != nil || taskID < 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(errInvalidInput("invalid task id"))
	}

	resp, err := h.service.DeleteTask(c.Context(), uint(taskID))
	if err != nil {
		logger.Errorf("delete task: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError,
			"An error occurred while deleting task")
	}

	return c.Status(resp.Status).JSON(resp)
}
