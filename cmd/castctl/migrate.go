package main

import (
	"database/sql"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql

	"github.com/arisa-app/castdir/internal/config"
	"github.com/arisa-app/castdir/migrations"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply, roll back or inspect database migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: withProvider(func(cmd *cobra.Command, p *goose.Provider) error {
				results, err := p.Up(cmd.Context())
				printResults(cmd.OutOrStdout(), results...)
				if err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}
				if len(results) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: withProvider(func(cmd *cobra.Command, p *goose.Provider) error {
				result, err := p.Down(cmd.Context())
				if result != nil {
					printResults(cmd.OutOrStdout(), result)
				}
				if err != nil {
					return fmt.Errorf("migrate down: %w", err)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: withProvider(func(cmd *cobra.Command, p *goose.Provider) error {
				statuses, err := p.Status(cmd.Context())
				if err != nil {
					return fmt.Errorf("migrate status: %w", err)
				}
				printStatus(cmd.OutOrStdout(), statuses)
				return nil
			}),
		},
	)
	return cmd
}

// withProvider opens a database/sql handle for goose around fn.
func withProvider(fn func(*cobra.Command, *goose.Provider) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		p, err := migrations.NewProvider(db)
		if err != nil {
			return err
		}
		return fn(cmd, p)
	}
}

func printResults(w io.Writer, results ...*goose.MigrationResult) {
	for _, r := range results {
		status := "OK"
		if r.Error != nil {
			status = "FAILED: " + r.Error.Error()
		}
		fmt.Fprintf(w, "%-4s %05d %s (%s) %s\n",
			r.Direction, r.Source.Version, r.Source.Path, r.Duration.Round(time.Millisecond), status)
	}
}

func printStatus(w io.Writer, statuses []*goose.MigrationStatus) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tSOURCE")
	for _, s := range statuses {
		applied := "-"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%05d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
	}
	_ = tw.Flush()
}
