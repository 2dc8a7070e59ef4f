// Package models defines the database models and shared query types
package models

// Pagination defaults for list operations
const (
	// DefaultPage is the page used when the caller does not supply one
	DefaultPage = 0
	// DefaultPageSize is the page size used when the caller does not supply one
	DefaultPageSize = 5
)

// ListOptions represents pagination options for list operations
type ListOptions struct {
	Limit  int
	Offset int
}
