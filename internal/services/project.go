// Package services implements the project and task business logic that sits
// between the HTTP handlers and the repositories.
package services

import (
	"context"
	"errors"
	"fmt"

	fiber "github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard/internal/db"
	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/internal/db/repos"
	"github.com/taskboard/taskboard/pkg/types"
)

// Project handles project and task operations. Expected outcomes (not-found,
// conflict) are returned as response values carrying a message and status;
// only storage failures are returned as errors.
type Project struct {
	projects *repos.ProjectRepository
	tasks    *repos.TaskRepository
}

// NewProjectService creates a new instance of the project service
func NewProjectService(projects *repos.ProjectRepository, tasks *repos.TaskRepository) *Project {
	return &Project{
		projects: projects,
		tasks:    tasks,
	}
}

// CreateProject creates a new project unless one with a similar name already
// exists. Name matching is case-insensitive.
func (s *Project) CreateProject(ctx context.Context, req *types.CreateProjectRequest) (*types.BaseResponse, error) {
	existing, err := s.projects.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking for existing project: %w", err)
	}
	if existing != nil {
		return &types.BaseResponse{
			Message: "Project with similar name already exists",
			Status:  fiber.StatusConflict,
		}, nil
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		// Concurrent creates can both pass the check above; the unique
		// index turns the loser into a conflict rather than a server error.
		if db.IsDuplicateKeyError(err) {
			return &types.BaseResponse{
				Message: "Project with similar name already exists",
				Status:  fiber.StatusConflict,
			}, nil
		}
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return &types.BaseResponse{
		Message: "Project created successfully",
		Status:  fiber.StatusOK,
	}, nil
}

// GetProjects lists projects, newest first, with pagination
func (s *Project) GetProjects(ctx context.Context, opts *models.ListOptions) (*types.GetProjectsResponse, error) {
	projects, err := s.projects.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return &types.GetProjectsResponse{
		BaseResponse: types.BaseResponse{
			Message: "Success",
			Status:  fiber.StatusOK,
		},
		Projects: projects,
	}, nil
}

// GetProjectByID fetches a single project by its ID
func (s *Project) GetProjectByID(ctx context.Context, projectID uint) (*types.ProjectResponse, error) {
	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.ProjectResponse{
				BaseResponse: projectNotFound(projectID),
			}, nil
		}
		return nil, fmt.Errorf("getting project %d: %w", projectID, err)
	}
	return &types.ProjectResponse{
		BaseResponse: types.BaseResponse{
			Message: "Success",
			Status:  fiber.StatusOK,
		},
		Project: project,
	}, nil
}

// CreateProjectTask creates a task under a project. The title must be unique
// within the project, compared case-insensitively.
func (s *Project) CreateProjectTask(ctx context.Context, projectID uint, req *types.CreateTaskRequest) (*types.BaseResponse, error) {
	_, err := s.projects.Get(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp := projectNotFound(projectID)
			return &resp, nil
		}
		return nil, fmt.Errorf("getting project %d: %w", projectID, err)
	}

	existing, err := s.tasks.GetByTitle(ctx, projectID, req.Title)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking for existing task: %w", err)
	}
	if existing != nil {
		return &types.BaseResponse{
			Message: fmt.Sprintf("Task with title %s already exists", existing.Title),
			Status:  fiber.StatusConflict,
		}, nil
	}

	task := &models.Task{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		if db.IsDuplicateKeyError(err) {
			return &types.BaseResponse{
				Message: fmt.Sprintf("Task with title %s already exists", req.Title),
				Status:  fiber.StatusConflict,
			}, nil
		}
		return nil, fmt.Errorf("creating task: %w", err)
	}

	return &types.BaseResponse{
		Message: "Task created successfully",
		Status:  fiber.StatusOK,
	}, nil
}

// GetProjectTasks lists a project's tasks, applying whichever of the due-date
// and status filters are present, newest first, with pagination
func (s *Project) GetProjectTasks(ctx context.Context, projectID uint, filters models.TaskFilters, opts *models.ListOptions) (*types.GetProjectTasksResponse, error) {
	_, err := s.projects.Get(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.GetProjectTasksResponse{
				BaseResponse: projectNotFound(projectID),
			}, nil
		}
		return nil, fmt.Errorf("getting project %d: %w", projectID, err)
	}

	tasks, err := s.tasks.ListByProject(ctx, projectID, filters, opts)
	if err != nil {
		return nil, fmt.Errorf("listing tasks for project %d: %w", projectID, err)
	}

	return &types.GetProjectTasksResponse{
		BaseResponse: types.BaseResponse{
			Message: "Success",
			Status:  fiber.StatusOK,
		},
		Tasks: tasks,
	}, nil
}

// UpdateTask applies a partial update to a task. A field is overwritten only
// when the incoming value is present and differs from the stored one; empty
// or absent fields are left untouched, never cleared. A save is issued even
// when nothing changed.
func (s *Project) UpdateTask(ctx context.Context, taskID uint, req *types.CreateTaskRequest) (*types.BaseResponse, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp := taskNotFound(taskID)
			return &resp, nil
		}
		return nil, fmt.Errorf("getting task %d: %w", taskID, err)
	}

	if req.Title != "" && req.Title != task.Title {
		task.Title = req.Title
	}
	if req.Description != "" && req.Description != task.Description {
		task.Description = req.Description
	}
	if req.Status != "" && req.Status != task.Status {
		task.Status = req.Status
	}
	if req.DueDate != nil && (task.DueDate == nil || !req.DueDate.Equal(*task.DueDate)) {
		task.DueDate = req.DueDate
	}

	if err := s.tasks.Save(ctx, task); err != nil {
		// Renaming to a title already taken within the project trips the
		// unique index; surface it as a conflict like the create path does.
		if db.IsDuplicateKeyError(err) {
			return &types.BaseResponse{
				Message: fmt.Sprintf("Task with title %s already exists", req.Title),
				Status:  fiber.StatusConflict,
			}, nil
		}
		return nil, fmt.Errorf("updating task %d: %w", taskID, err)
	}

	return &types.BaseResponse{
		Message: "Task updated successfully",
		Status:  fiber.StatusOK,
	}, nil
}

// DeleteTask removes a task by ID
func (s *Project) DeleteTask(ctx context.Context, taskID uint) (*types.BaseResponse, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp := taskNotFound(taskID)
			return &resp, nil
		}
		return nil, fmt.Errorf("getting task %d: %w", taskID, err)
	}

	if err := s.tasks.Delete(ctx, task); err != nil {
		return nil, fmt.Errorf("deleting task %d: %w", taskID, err)
	}

	return &types.BaseResponse{
		Message: fmt.Sprintf("Task with id %d successfully deleted", taskID),
		Status:  fiber.StatusOK,
	}, nil
}

// GetProjectsSummary reports, for every project, the number of distinct
// status values among its tasks. The field is named taskCounts but it counts
// status buckets, not tasks; callers depend on that value.
func (s *Project) GetProjectsSummary(ctx context.Context) ([]types.ProjectSummary, error) {
	projects, err := s.projects.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	summaries := make([]types.ProjectSummary, 0, len(projects))
	for _, project := range projects {
		tasks, err := s.tasks.ListAllByProject(ctx, project.ID)
		if err != nil {
			return nil, fmt.Errorf("listing tasks for project %d: %w", project.ID, err)
		}

		statuses := make(map[string]int)
		for _, task := range tasks {
			statuses[task.Status]++
		}

		summaries = append(summaries, types.ProjectSummary{
			Project:    project,
			TaskCounts: len(statuses),
		})
	}

	return summaries, nil
}

func projectNotFound(projectID uint) types.BaseResponse {
	return types.BaseResponse{
		Message: fmt.Sprintf("Project with id %d not found", projectID),
		Status:  fiber.StatusNotFound,
	}
}

func taskNotFound(taskID uint) types.BaseResponse {
	return types.BaseResponse{
		Message: fmt.Sprintf("Task with id %d not found", taskID),
		Status:  fiber.StatusNotFound,
	}
}
