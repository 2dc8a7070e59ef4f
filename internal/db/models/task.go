package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Column names used for query filters on the task model
const (
	// TaskStatusColumn is the column name for task status
	TaskStatusColumn = "status"
	// TaskDueDateColumn is the column name for task due date
	TaskDueDateColumn = "due_date"
)

// Task is a unit of work scoped to exactly one project. Status is a free-form
// string; no enumeration is enforced.
type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProjectID   uint      `json:"projectId" gorm:"not null; index; uniqueIndex:idx_tasks_project_title"`
	Title       string    `json:"title" gorm:"not null; uniqueIndex:idx_tasks_project_title"`
	Description string    `json:"description" gorm:"type:text"`
	Status      string    `json:"status" gorm:"index"`
	DueDate     *DateOnly `json:"dueDate,omitempty"`
}

// TaskFilters represents the optional filters for task list operations.
// A nil field means the filter is not applied.
type TaskFilters struct {
	DueDate *DateOnly
	Status  *string
}

// Validate ensures that the task data is valid
func (t *Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	if t.ProjectID == 0 {
		return fmt.Errorf("task must belong to a project")
	}
	return nil
}

// BeforeCreate is a GORM hook that runs before creating a new task
func (t *Task) BeforeCreate(_ *gorm.DB) error {
	return t.Validate()
}
