package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arisa-app/castdir/internal/client"
	"github.com/arisa-app/castdir/internal/config"
	"github.com/arisa-app/castdir/internal/logging"
	"github.com/arisa-app/castdir/internal/tui"
)

func newWizardCmd() *cobra.Command {
	var api string
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Run the onboarding wizard in the terminal",
		Long: `wizard walks through area, service style and budget, then lists the
matching casts from the API. Press L to show the request log and r to retry a
failed request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadClient()
			if err != nil {
				return err
			}
			if api != "" {
				cfg.APIBaseURL = api
			}

			// The screen belongs to bubbletea, so records go to the in-app panel.
			panel := tui.NewLogPanel(tui.DefaultLogCapacity, logging.ParseLevel(cfg.Log.Level))
			logger := slog.New(panel).With("api", cfg.APIBaseURL)

			ctx := cmd.Context()
			m := tui.New(ctx, client.New(cfg.APIBaseURL, logger), logger, panel)
			final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			if err != nil {
				return fmt.Errorf("wizard: %w", err)
			}
			if fm, ok := final.(tui.Model); ok && fm.Result() != nil {
				fmt.Fprintln(cmd.OutOrStdout(), fm.Result().URL())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&api, "api", "", "API base URL (default: $API_BASE_URL or http://localhost:8080)")
	return cmd
}
