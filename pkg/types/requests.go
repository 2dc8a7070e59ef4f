// Package types defines the request and response shapes shared by the API
// server, the HTTP client and the CLI.
package types

import (
	"fmt"

	"github.com/taskboard/taskboard/internal/db/models"
)

// CreateProjectRequest is the body for creating a project
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate ensures the request carries the required fields
func (r *CreateProjectRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// CreateTaskRequest is the body for creating a task. The same shape is used
// for updates, where empty or absent fields mean "no change".
type CreateTaskRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	DueDate     *models.DateOnly `json:"dueDate"`
}

// Validate ensures the request carries the required fields
func (r *CreateTaskRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}
