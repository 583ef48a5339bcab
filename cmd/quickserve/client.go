package main

import (
	"github.com/spf13/cobra"

	"github.com/sagarc03/quickserve"
	"github.com/sagarc03/quickserve/clientcli"
)

var (
	endpoint   string
	jsonOutput bool
	quiet      bool

	createName string
	createID   int
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running quickserve server",
	Long: `Call the routes of a running quickserve server.

The endpoint is taken from --endpoint, then QUICKSERVE_ENDPOINT, then
http://localhost:3000. Server errors are printed with their status and
make the command exit non-zero.`,
}

var clientHealthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server health",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runClient(cmd, func(c *clientcli.Client, f clientcli.Formatter) error {
			h, err := c.Health(cmd.Context())
			if err != nil {
				return err
			}
			return f.FormatHealth(cmd.OutOrStdout(), h)
		})
	},
}

var clientCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an example item",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		payload := quickserve.Payload{Name: createName}
		if cmd.Flags().Changed("id") {
			payload.ID = &createID
		}

		return runClient(cmd, func(c *clientcli.Client, f clientcli.Formatter) error {
			created, err := c.CreateItem(cmd.Context(), payload)
			if err != nil {
				return err
			}
			return f.FormatCreated(cmd.OutOrStdout(), created)
		})
	},
}

var clientGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get an example item by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClient(cmd, func(c *clientcli.Client, f clientcli.Formatter) error {
			item, err := c.GetItem(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return f.FormatItem(cmd.OutOrStdout(), item)
		})
	},
}

func init() {
	clientCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "e", "", "server URL (default: http://localhost:3000, env: QUICKSERVE_ENDPOINT)")
	clientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	clientCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")

	clientCreateCmd.Flags().StringVar(&createName, "name", "", "item name")
	clientCreateCmd.Flags().IntVar(&createID, "id", 0, "item id (omitted when not set)")

	clientCmd.AddCommand(clientHealthCmd)
	clientCmd.AddCommand(clientCreateCmd)
	clientCmd.AddCommand(clientGetCmd)
	rootCmd.AddCommand(clientCmd)
}

// getClient creates a client from environment and flags, flags taking
// precedence.
func getClient() (*clientcli.Client, error) {
	cfg := clientcli.MergeConfig(
		clientcli.ConfigFromEnv(),
		&clientcli.Config{Endpoint: endpoint},
	)
	return clientcli.New(cfg)
}

// runClient builds the client and formatter, runs fn and prints any error
// with the selected formatter before returning it.
func runClient(cmd *cobra.Command, fn func(*clientcli.Client, clientcli.Formatter) error) error {
	formatter := clientcli.NewFormatter(jsonOutput, quiet)

	client, err := getClient()
	if err == nil {
		err = fn(client, formatter)
	}
	if err != nil {
		_ = formatter.FormatError(cmd.ErrOrStderr(), err)
		cmd.SilenceErrors = true
		return err
	}
	return nil
}
