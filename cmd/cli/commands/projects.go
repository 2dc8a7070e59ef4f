package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskboard/taskboard/pkg/types"
)

// Flag names
const (
	flagName        = "name"
	flagDescription = "description"
	flagPage        = "page"
	flagSize        = "size"
	flagProjectID   = "project-id"
)

// GetProjectsCmd returns the projects command group
func GetProjectsCmd() *cobra.Command {
	projectsCmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage projects",
	}

	projectsCmd.AddCommand(createProjectCmd())
	projectsCmd.AddCommand(listProjectsCmd())
	projectsCmd.AddCommand(getProjectCmd())
	projectsCmd.AddCommand(projectsSummaryCmd())

	return projectsCmd
}

func createProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, err := cmd.Flags().GetString(flagName)
			if err != nil {
				return fmt.Errorf("error getting name flag: %w", err)
			}
			description, err := cmd.Flags().GetString(flagDescription)
			if err != nil {
				return fmt.Errorf("error getting description flag: %w", err)
			}

			resp, err := apiClient.CreateProject(cmd.Context(), types.CreateProjectRequest{
				Name:        name,
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("error creating project: %w", err)
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringP(flagName, "n", "", "Project name")
	cmd.Flags().StringP(flagDescription, "d", "", "Project description")
	if err := cmd.MarkFlagRequired(flagName); err != nil {
		panic(fmt.Errorf("failed to mark name flag as required for create project command: %w", err))
	}

	return cmd
}

func listProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := cmd.Flags().GetInt(flagPage)
			if err != nil {
				return fmt.Errorf("error getting page flag: %w", err)
			}
			size, err := cmd.Flags().GetInt(flagSize)
			if err != nil {
				return fmt.Errorf("error getting size flag: %w", err)
			}

			resp, err := apiClient.GetProjects(cmd.Context(), page, size)
			if err != nil {
				return fmt.Errorf("error listing projects: %w", err)
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().IntP(flagPage, "p", 0, "Page number for pagination")
	cmd.Flags().Int(flagSize, 5, "Page size for pagination")

	return cmd
}

func getProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a project by ID",
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectID, err := cmd.Flags().GetUint(flagProjectID)
			if err != nil {
				return fmt.Errorf("error getting project-id flag: %w", err)
			}

			resp, err := apiClient.GetProject(cmd.Context(), projectID)
			if err != nil {
				return fmt.Errorf("error getting project: %w", err)
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().Uint(flagProjectID, 0, "Project ID")
	if err := cmd.MarkFlagRequired(flagProjectID); err != nil {
		panic(fmt.Errorf("failed to mark project-id flag as required for get project command: %w", err))
	}

	return cmd
}

func projectsSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the per-project distinct task status counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := apiClient.GetProjectsSummary(cmd.Context())
			if err != nil {
				return fmt.Errorf("error getting projects summary: %w", err)
			}
			return printJSON(cmd, resp)
		},
	}
}
