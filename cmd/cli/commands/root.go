// Package commands implements the taskboard CLI commands
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	v1 "github.com/taskboard/taskboard/internal/api/v1/routes"
	"github.com/taskboard/taskboard/pkg/api/v1/client"
)

// flag names
const (
	flagServerAddress = "server-address"
)

// environment variable names
const (
	envServerAddress = "TASKBOARD_SERVER_ADDRESS"
)

var (
	// apiClient is the shared API client instance
	apiClient client.Client
	// serverAddress holds the target API server address. Flag parsing sets this.
	serverAddress string
)

// initClient initializes the API client
func initClient() error {
	var err error
	opts := client.DefaultOptions()
	opts.BaseURL = serverAddress

	apiClient, err = client.NewClient(opts)
	return err
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&serverAddress, flagServerAddress, "s", v1.DefaultBaseURL,
		"Address of the taskboard API server (env: TASKBOARD_SERVER_ADDRESS)")

	RootCmd.AddCommand(GetProjectsCmd())
	RootCmd.AddCommand(GetTasksCmd())
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "taskboard",
	Short: "Taskboard CLI - A command line interface for the taskboard API",
	Long:  `Taskboard CLI is a command line tool for managing projects and their tasks through the taskboard API.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Flag > env var > default
		if !cmd.Flags().Changed(flagServerAddress) {
			if envAddr := os.Getenv(envServerAddress); envAddr != "" {
				serverAddress = envAddr
			}
		}

		if serverAddress == "" {
			return fmt.Errorf("server address cannot be empty")
		}
		return initClient()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// printJSON prints v to the command's stdout as indented JSON
func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	cmd.Println(string(out))
	return nil
}
