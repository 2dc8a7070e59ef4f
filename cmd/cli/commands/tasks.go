package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/pkg/api/v1/client"
	"github.com/taskboard/taskboard/pkg/types"
)

// Flag names for task commands
const (
	flagTaskID  = "task-id"
	flagTitle   = "title"
	flagStatus  = "status"
	flagDueDate = "due-date"
)

// GetTasksCmd returns the tasks command group
func GetTasksCmd() *cobra.Command {
	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks",
	}

	tasksCmd.AddCommand(createTaskCmd())
	tasksCmd.AddCommand(listTasksCmd())
	tasksCmd.AddCommand(updateTaskCmd())
	tasksCmd.AddCommand(deleteTaskCmd())

	return tasksCmd
}

// taskRequestFromFlags builds a task request from the common task flags
func taskRequestFromFlags(cmd *cobra.Command) (*types.CreateTaskRequest, error) {
	title, err := cmd.Flags().GetString(flagTitle)
	if err != nil {
		return nil, fmt.Errorf("error getting title flag: %w", err)
	}
	description, err := cmd.Flags().GetString(flagDescription)
	if err != nil {
		return nil, fmt.Errorf("error getting description flag: %w", err)
	}
	status, err := cmd.Flags().GetString(flagStatus)
	if err != nil {
		return nil, fmt.Errorf("error getting status flag: %w", err)
	}
	dueDateStr, err := cmd.Flags().GetString(flagDueDate)
	if err != nil {
		return nil, fmt.Errorf("error getting due-date flag: %w", err)
	}

	req := &types.CreateTaskRequest{
		Title:       title,
		Description: description,
		Status:      status,
	}
	if dueDateStr != "" {
		dueDate, err := models.ParseDateOnly(dueDateStr)
		if err != nil {
			return nil, err
		}
		req.DueDate = &dueDate
	}
	return req, nil
}

func createTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task under a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectID, err := cmd.Flags().GetUint(flagProjectID)
			if err != nil {
				return fmt.Errorf("error getting project-id flag: %w", err)
			}
			req, err := taskRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			resp, err := apiClient.CreateTask(cmd.Context(), projectID, *req)
			if err != nil {
				return fmt.Errorf("error creating task: %w", err)
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().Uint(flagProjectID, 0, "Owning project ID")
	cmd.Flags().StringP(flagTitle, "t", "", "Task title")
	cmd.Flags().StringP(flagDescription, "d", "", "Task description")
	cmd.Flags().String(flagStatus, "", "Task status")
	cmd.Flags().String(flagDueDate, "", "Task due date (YYYY-MM-DD)")
	for _, flag := range []string{flagProjectID, flagTitle} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Errorf("failed to mark %s flag as required for create task command: %w", flag, err))
		}
	}

	return cmd
}

func listTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectID, err := cmd.Flags().GetUint(flagProjectID)
			if err != nil {
				return fmt.Errorf("error getting project-id flag: %w", err)
			}
			status, err := cmd.Flags().GetString(flagStatus)
			if err != nil {
				return fmt.Errorf("error getting status flag: %w", err)
			}
			dueDate, err := cmd.Flags().GetString(flagDueDate)
			if err != nil {
				return fmt.Errorf("error getting due-date flag: %w", err)
			}
			page, err := cmd.Flags().GetInt(flagPage)
			if err != nil {
				return fmt.Errorf("error getting page flag: %w", err)
			}
			size, err := cmd.Flags().GetInt(flagSize)
			if err != nil {
				return fmt.Errorf("error getting size flag: %w", err)
			}

			resp, err := apiClient.GetProjectTasks(cmd.Context(), projectID, client.TaskListOptions{
				DueDate: dueDate,
				Status:  status,
				Page:    page,
				Size:    size,
			})
			if err != nil {
				return fmt.Errorf("error listing tasks: %w", err)
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().Uint(flagProjectID, 0, "Owning project ID")
	cmd.Flags().String(flagStatus, "", "Filter by status")
	cmd.Flags().String(flagDueDate, "", "Filter by due date (YYYY-MM-DD)")
	cmd.Flags().IntP(flagPage, "p", 0, "Page number for pagination")
	cmd.Flags().Int(flagSize, 5, "Page size for pagination")
	if err := cmd.MarkFlagRequired(flagProjectID); err != nil {
		panic(fmt.Errorf("failed to mark project-id flag as required for list tasks command: %w", err))
	}

	return cmd
}

func updateTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a task's fields; omitted flags leave values unchanged",
		RunE: func(cmd *cobra.Command, _ []string) error {
			taskID, err := cmd.Flags().GetUint(flagTaskID)
			if err != nil {
				return fmt.Errorf("error getting task-id flag: %w", err)
			}
			req, err := taskRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			resp, err := apiClient.UpdateTask(cmd.Context(), taskID, *req)
			if err != nil {
				return fmt.Errorf("error updating task: %w", err)
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().Uint(flagTaskID, 0, "Task ID")
	cmd.Flags().StringP(flagTitle, "t", "", "Task title")
	cmd.Flags().StringP(flagDescription, "d", "", "Task description")
	cmd.Flags().String(flagStatus, "", "Task status")
	cmd.Flags().String(flagDueDate, "", "Task due date (YYYY-MM-DD)")
	if err := cmd.MarkFlagRequired(flagTaskID); err != nil {
		panic(fmt.Errorf("failed to mark task-id flag as required for update task command: %w", err))
	}

	return cmd
}

func deleteTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			taskID, err := cmd.Flags().GetUint(flagTaskID)
			if err != nil {
				return fmt.Errorf("error getting task-id flag: %w", err)
			}

			resp, err := apiClient.DeleteTask(cmd.Context(), taskID)
			if err != nil {
				return fmt.Errorf("error deleting task: %w", err)
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().Uint(flagTaskID, 0, "Task ID")
	if err := cmd.MarkFlagRequired(flagTaskID); err != nil {
		panic(fmt.Errorf("failed to mark task-id flag as required for delete task command: %w", err))
	}

	return cmd
}
