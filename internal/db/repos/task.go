package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/taskboard/taskboard/internal/db/models"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

// Create creates a new task in the database
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// Get retrieves a task by ID from the database
func (r *TaskRepository) Get(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// GetByTitle retrieves a task by title within a project, matching the title
// case-insensitively
func (r *TaskRepository) GetByTitle(ctx context.Context, projectID uint, title string) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND LOWER(title) = LOWER(?)", projectID, title).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByProject retrieves tasks for a project with the given filters applied,
// paginated and ordered newest first
func (r *TaskRepository) ListByProject(ctx context.Context, projectID uint, filters models.TaskFilters, opts *models.ListOptions) ([]models.Task, error) {
	var tasks []models.Task
	query := r.db.WithContext(ctx).Where(models.Task{ProjectID: projectID})
	if filters.DueDate != nil {
		query = query.Where(models.TaskDueDateColumn+" = ?", filters.DueDate.Time)
	}
	if filters.Status != nil {
		query = query.Where(models.TaskStatusColumn+" = ?", *filters.Status)
	}
	err := query.Order("id DESC").
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&tasks).Error
	return tasks, err
}

// ListAllByProject retrieves every task for a project, unpaginated. Used by
// the summary operation.
func (r *TaskRepository) ListAllByProject(ctx context.Context, projectID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.WithContext(ctx).
		Where(models.Task{ProjectID: projectID}).
		Find(&tasks).Error
	return tasks, err
}

// Save persists all fields of an existing task
func (r *TaskRepository) Save(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete removes a task from the database
func (r *TaskRepository) Delete(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Delete(task).Error
}
