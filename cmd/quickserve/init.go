package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sagarc03/quickserve/config"
)

var errConfigExists = errors.New("config file already exists")

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Prompt for the common settings and write them to a YAML config file.

Use --yes to accept the current values (defaults, environment and flags)
without prompting.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringP("output", "o", "config.yaml", "path of the config file to write")
	initCmd.Flags().BoolP("yes", "y", false, "skip prompts and use current values")
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	yes, _ := cmd.Flags().GetBool("yes")
	force, _ := cmd.Flags().GetBool("force")

	if !force {
		if _, statErr := os.Stat(output); statErr == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", errConfigExists, output)
		}
	}

	if !yes {
		cancelled, promptErr := promptConfig(cfg)
		if promptErr != nil {
			return promptErr
		}
		if cancelled {
			return nil
		}
	}

	if err := writeConfigFile(output, cfg, force); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
	return nil
}

// promptConfig edits cfg in place. It reports cancelled when the user
// aborts a prompt.
func promptConfig(cfg *config.Config) (bool, error) {
	envSelect := promptui.Select{
		Label: "Environment",
		Items: []string{config.EnvDevelopment, config.EnvProduction, config.EnvTest},
	}
	_, env, err := envSelect.Run()
	if err != nil {
		return true, handlePromptError(err)
	}
	cfg.Env = env

	portPrompt := promptui.Prompt{
		Label:    "Port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return true, handlePromptError(err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	bodyPrompt := promptui.Prompt{
		Label:    "Max request body (bytes)",
		Default:  strconv.FormatInt(cfg.Server.MaxBodyBytes, 10),
		Validate: validateBodyLimit,
	}
	bodyStr, err := bodyPrompt.Run()
	if err != nil {
		return true, handlePromptError(err)
	}
	cfg.Server.MaxBodyBytes, _ = strconv.ParseInt(bodyStr, 10, 64)

	corsPrompt := promptui.Prompt{
		Label:     "Allow cross-origin requests from any origin",
		IsConfirm: true,
		Default:   "y",
	}
	if _, err := corsPrompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			return true, handlePromptError(err)
		}
		// A "no" answer surfaces as ErrAbort.
		cfg.CORS.Enabled = false
	} else {
		cfg.CORS.Enabled = true
		cfg.CORS.AllowedOrigins = []string{"*"}
	}

	return false, nil
}

func validatePort(input string) error {
	port, err := strconv.Atoi(input)
	if err != nil {
		return errors.New("port must be a number")
	}
	if port < 0 || port > 65535 {
		return errors.New("port must be between 0 and 65535")
	}
	return nil
}

func validateBodyLimit(input string) error {
	n, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return errors.New("limit must be a number")
	}
	if n < 0 {
		return errors.New("limit must not be negative")
	}
	return nil
}

// writeConfigFile writes cfg as YAML to path. An existing file is only
// replaced when force is set.
func writeConfigFile(path string, cfg *config.Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", errConfigExists, path)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(filepath.Clean(path), data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		fmt.Println("\nCancelled.")
		os.Exit(0)
	}
	if errors.Is(err, promptui.ErrAbort) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}
