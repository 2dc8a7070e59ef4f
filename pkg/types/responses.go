package types

import (
	"github.com/taskboard/taskboard/internal/db/models"
)

// BaseResponse carries the outcome of an operation: a human-readable message
// and the HTTP status code the API layer should return verbatim.
type BaseResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// GetProjectsResponse is the payload for listing projects
type GetProjectsResponse struct {
	BaseResponse
	Projects []models.Project `json:"projects"`
}

// ProjectResponse is the payload for fetching a single project
type ProjectResponse struct {
	BaseResponse
	Project *models.Project `json:"project,omitempty"`
}

// GetProjectTasksResponse is the payload for listing a project's tasks
type GetProjectTasksResponse struct {
	BaseResponse
	Tasks []models.Task `json:"tasks"`
}

// ProjectSummary pairs a project with its task summary. TaskCounts is the
// number of distinct status values among the project's tasks, not the number
// of tasks.
type ProjectSummary struct {
	Project    models.Project `json:"project"`
	TaskCounts int            `json:"taskCounts"`
}
