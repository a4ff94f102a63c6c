// Command castctl is the operator tool for the cast directory: it applies
// migrations, loads seed data, exports the roster and runs the terminal
// onboarding wizard against a running API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/arisa-app/castdir/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "castctl:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "castctl",
		Short: "Operate the Arisa cast directory",
		Long: `castctl manages the cast directory database and runs the onboarding wizard.

Database commands read DATABASE_URL (and the other server variables) from the
environment or a .env file in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newExportCmd(),
		newWizardCmd(),
	)
	return root
}

// openPool loads the server configuration and connects to the database.
func openPool(ctx context.Context) (config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("open database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return config.Config{}, nil, fmt.Errorf("connect to database: %w", err)
	}
	return cfg, pool, nil
}
