package handlers

import "github.com/taskboard/taskboard/internal/db/models"

// MaxPageSize is the maximum allowed page size
const MaxPageSize = 100

// getPaginationOptions returns a ListOptions struct with validated pagination
// parameters. Pages are zero-based.
func getPaginationOptions(page, size int) *models.ListOptions {
	if page < 0 {
		page = models.DefaultPage
	}
	if size < 1 {
		size = models.DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return &models.ListOptions{
		Limit:  size,
		Offset: page * size,
	}
}
