package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	_ = godotenv.Load()

	envConfig := os.Getenv("SMARTNUS_CONFIG")
	if envConfig == "" {
		envConfig = "smartnus.yaml"
	}

	cmd := &cobra.Command{
		Use:   "smartnus",
		Short: "Local quiz and flashcard manager",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.AddCommand(NewShellCmd(&configPath))
	cmd.AddCommand(NewMigrateCmd(&configPath))
	return cmd
}
