// Package cmd contains all CLI commands for watchctl.
package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	serverURL string
	token     string
)

var rootCmd = &cobra.Command{
	Use:   "watchctl",
	Short: "Operator CLI for the watcher control plane",
	Long: `watchctl mints bearer tokens and drives the control-plane API
(features, config, flush) without the companion web UI.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Control plane base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token (x-btoken)")

	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(featuresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(flushCmd)
}

// apiClient builds a resty client carrying the bearer token header.
func apiClient() *resty.Client {
	c := resty.New().
		SetBaseURL(serverURL).
		SetTimeout(30 * time.Second)
	if token != "" {
		c.SetHeader("x-btoken", token)
	}
	return c
}

// checkResponse turns an API error envelope into a CLI error.
func checkResponse(res *resty.Response) error {
	if !res.IsError() {
		return nil
	}
	var envelope struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(res.Body(), &envelope) == nil && envelope.Error != "" {
		return fmt.Errorf("API error (%d): %s", res.StatusCode(), envelope.Error)
	}
	return fmt.Errorf("API error (%d): %s", res.StatusCode(), res.Status())
}

// printJSON pretty-prints a JSON response body.
func printJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		// Not JSON, print as-is.
		fmt.Println(string(data))
		return nil
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
