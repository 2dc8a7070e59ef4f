// Package client provides a typed HTTP client for the taskboard API
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	v1 "github.com/taskboard/taskboard/internal/api/v1/routes"
	"github.com/taskboard/taskboard/pkg/types"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Client defines the interface for interacting with the taskboard API.
// Domain outcomes (not-found, conflict) are not errors; they come back in the
// response's Message/Status fields. Errors are reserved for transport
// failures and server faults.
type Client interface {
	// Project methods
	CreateProject(ctx context.Context, req types.CreateProjectRequest) (*types.BaseResponse, error)
	GetProjects(ctx context.Context, page, size int) (*types.GetProjectsResponse, error)
	GetProject(ctx context.Context, projectID uint) (*types.ProjectResponse, error)
	GetProjectsSummary(ctx context.Context) ([]types.ProjectSummary, error)

	// Task methods
	CreateTask(ctx context.Context, projectID uint, req types.CreateTaskRequest) (*types.BaseResponse, error)
	GetProjectTasks(ctx context.Context, projectID uint, opts TaskListOptions) (*types.GetProjectTasksResponse, error)
	UpdateTask(ctx context.Context, taskID uint, req types.CreateTaskRequest) (*types.BaseResponse, error)
	DeleteTask(ctx context.Context, taskID uint) (*types.BaseResponse, error)

	// Health check
	HealthCheck(ctx context.Context) (map[string]string, error)
}

// TaskListOptions carries the optional query parameters for listing tasks
type TaskListOptions struct {
	DueDate string
	Status  string
	Page    int
	Size    int
}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: v1.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return &APIClient{
		baseURL: opts.BaseURL,
		timeout: opts.Timeout,
	}, nil
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	case http.MethodDelete:
		agent = fiber.Delete(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	agent.Set("Content-Type", "application/json")
	agent.Set("Accept", "application/json")

	if body != nil {
		agent.JSON(body)
	}

	return agent, nil
}

// executeRequest creates an agent, sends the request, and decodes the
// response body into v. 4xx statuses are not errors here: the API encodes
// domain outcomes in the response body.
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, body, v interface{}) error {
	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	statusCode, respBody, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending request: %w", errs[0])
	}

	if statusCode >= 500 {
		var errResp types.BaseResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return &fiber.Error{Code: statusCode, Message: errResp.Message}
		}
		return &fiber.Error{Code: statusCode, Message: "unknown error"}
	}

	if v != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, v); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}

	return nil
}

// Project methods implementation

// CreateProject creates a new project
func (c *APIClient) CreateProject(ctx context.Context, req types.CreateProjectRequest) (*types.BaseResponse, error) {
	var response types.BaseResponse
	if err := c.executeRequest(ctx, http.MethodPost, v1.ProjectsURL(), req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetProjects lists projects with pagination
func (c *APIClient) GetProjects(ctx context.Context, page, size int) (*types.GetProjectsResponse, error) {
	endpoint := fmt.Sprintf("%s?page=%d&size=%d", v1.ProjectsURL(), page, size)
	var response types.GetProjectsResponse
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetProject fetches a project by ID
func (c *APIClient) GetProject(ctx context.Context, projectID uint) (*types.ProjectResponse, error) {
	var response types.ProjectResponse
	if err := c.executeRequest(ctx, http.MethodGet, v1.ProjectURL(projectID), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetProjectsSummary fetches the per-project distinct-status summary
func (c *APIClient) GetProjectsSummary(ctx context.Context) ([]types.ProjectSummary, error) {
	var response []types.ProjectSummary
	if err := c.executeRequest(ctx, http.MethodGet, v1.ProjectsSummaryURL(), nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// Task methods implementation

// CreateTask creates a new task under a project
func (c *APIClient) CreateTask(ctx context.Context, projectID uint, req types.CreateTaskRequest) (*types.BaseResponse, error) {
	var response types.BaseResponse
	if err := c.executeRequest(ctx, http.MethodPost, v1.ProjectTasksURL(projectID), req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetProjectTasks lists a project's tasks with optional filters
func (c *APIClient) GetProjectTasks(ctx context.Context, projectID uint, opts TaskListOptions) (*types.GetProjectTasksResponse, error) {
	query := url.Values{}
	if opts.DueDate != "" {
		query.Set("dueDate", opts.DueDate)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.Page > 0 {
		query.Set("page", fmt.Sprintf("%d", opts.Page))
	}
	if opts.Size > 0 {
		query.Set("size", fmt.Sprintf("%d", opts.Size))
	}

	endpoint := v1.ProjectTasksURL(projectID)
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var response types.GetProjectTasksResponse
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// UpdateTask partially updates a task
func (c *APIClient) UpdateTask(ctx context.Context, taskID uint, req types.CreateTaskRequest) (*types.BaseResponse, error) {
	var response types.BaseResponse
	if err := c.executeRequest(ctx, http.MethodPut, v1.TaskURL(taskID), req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteTask deletes a task by ID
func (c *APIClient) DeleteTask(ctx context.Context, taskID uint) (*types.BaseResponse, error) {
	var response types.BaseResponse
	if err := c.executeRequest(ctx, http.MethodDelete, v1.TaskURL(taskID), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// HealthCheck checks the API server health
func (c *APIClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	var response map[string]string
	if err := c.executeRequest(ctx, http.MethodGet, "/health", nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}
