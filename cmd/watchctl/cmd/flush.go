package cmd

import (
	"github.com/spf13/cobra"
)

var flushCmd = &cobra.Command{
	Use:       "flush <scope>",
	Short:     "Flush a category of the watcher's cached state",
	Long:      `Flush one category of the watcher's cached state: servers, discord, telegram or slack.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"servers", "discord", "telegram", "slack"},
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := apiClient().R().Get("/flush/" + args[0])
		if err != nil {
			return err
		}
		if err := checkResponse(res); err != nil {
			return err
		}
		return printJSON(res.Body())
	},
}

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Show service versions and configured integrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := apiClient().R().Get("/features")
		if err != nil {
			return err
		}
		if err := checkResponse(res); err != nil {
			return err
		}
		return printJSON(res.Body())
	},
}
