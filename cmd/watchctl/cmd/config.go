package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read or replace the watcher configuration",
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the watcher's configuration list",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := apiClient().R().Get("/config")
		if err != nil {
			return err
		}
		if err := checkResponse(res); err != nil {
			return err
		}
		return printJSON(res.Body())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <file>",
	Short: "Replace the watcher's configuration from a JSON file",
	Long: `Replace the watcher's configuration list with the JSON array in
<file> and restart the watcher. Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var body []byte
		var err error
		if args[0] == "-" {
			body, err = io.ReadAll(os.Stdin)
		} else {
			body, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		res, err := apiClient().R().
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Post("/config")
		if err != nil {
			return err
		}
		if err := checkResponse(res); err != nil {
			return err
		}
		return printJSON(res.Body())
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}
