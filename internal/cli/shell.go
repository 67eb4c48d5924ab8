package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"smartnus/internal/config"
	"smartnus/internal/domain"
	"smartnus/internal/infra/sqlite"
	"smartnus/internal/logging"
	"smartnus/internal/model"
	"smartnus/internal/parser"
)

// snapshotStore is what the shell needs from persistence.
type snapshotStore interface {
	Load(ctx context.Context) (*domain.QuestionList, error)
	Save(ctx context.Context, list *domain.QuestionList) error
}

// NewShellCmd builds the CLI subcommand for the interactive shell.
func NewShellCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive question manager",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.Context(), *configPath)
		},
	}
}

func runShell(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.App.Name, cfg.App.Env)

	store, err := sqlite.Open(cfg.Storage.Path, logger)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Migrate(ctx); err != nil {
		return err
	}

	list, err := store.Load(ctx)
	if err != nil {
		return err
	}
	m := model.New(list, model.UserPrefs{Theme: cfg.UI.Theme})

	saveTheme := func(theme string) error {
		cfg.UI.Theme = theme
		return config.Save(configPath, cfg)
	}
	return runLoop(ctx, m, store, os.Stdin, os.Stdout, logger, saveTheme)
}

// runLoop reads lines, parses them into commands and executes them against
// the model, persisting a snapshot after every command. It returns when the
// input ends or a command sets the Exit directive.
func runLoop(ctx context.Context, m *model.Model, store snapshotStore, in io.Reader, out io.Writer, logger zerolog.Logger, saveTheme func(string) error) error {
	fmt.Fprintln(out, "Welcome to SmartNUS. Type 'help' to list commands.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, err := parser.Parse(line)
		if err != nil {
			fmt.Fprintln(out, err.Error())
			continue
		}

		themeBefore := m.Prefs().Theme
		result, err := cmd.Execute(m)
		if err != nil {
			// Recoverable: the model is unchanged, report and keep going.
			fmt.Fprintln(out, err.Error())
			continue
		}
		fmt.Fprintln(out, result.Feedback)
		if result.ShowHelp {
			fmt.Fprintln(out, parser.Overview)
		}

		if err := store.Save(ctx, m.QuestionList()); err != nil {
			logger.Error().Err(err).Msg("save snapshot")
			fmt.Fprintln(out, "Warning: your questions could not be saved.")
		}
		if theme := m.Prefs().Theme; theme != themeBefore && saveTheme != nil {
			if err := saveTheme(theme); err != nil {
				logger.Error().Err(err).Msg("save preferences")
			}
		}

		if result.Exit {
			break
		}
	}
	return scanner.Err()
}
