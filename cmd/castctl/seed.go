package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arisa-app/castdir/internal/logging"
	"github.com/arisa-app/castdir/internal/repo"
	"github.com/arisa-app/castdir/internal/seed"
)

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the admin account, area labels and sample casts",
		Long: `seed upserts fixtures into the database inside one transaction.

The admin password comes from SEED_ADMIN_PASSWORD and the admin email from
SEED_ADMIN_EMAIL. Rows that already exist (matched by email, area key or
snsLink) are left as they are, so seeding twice is safe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fx, err := loadFixtures(file)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			cfg, pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			logger, closer := logging.NewTo(os.Stderr, cfg.Log)
			defer closer.Close()

			tx, err := pool.Begin(ctx)
			if err != nil {
				return fmt.Errorf("seed: begin: %w", err)
			}
			defer func() { _ = tx.Rollback(ctx) }()

			s := seed.New(repo.NewAdminRepo(tx), repo.NewAreaRepo(tx), repo.NewCastRepo(tx), logger)
			rep, err := s.Run(ctx, fx, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
			if err != nil {
				return err
			}
			if err := tx.Commit(ctx); err != nil {
				return fmt.Errorf("seed: commit: %w", err)
			}

			logger.Info("seed complete", slog.String("admin", rep.Admin), slog.Int("areas", rep.Areas), slog.Int("casts", rep.Casts))
			fmt.Fprintf(cmd.OutOrStdout(), "seeded admin %s, %d areas, %d casts\n", rep.Admin, rep.Areas, rep.Casts)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML fixtures file (default: built-in fixtures)")
	return cmd
}

func loadFixtures(file string) (seed.Fixtures, error) {
	if file == "" {
		return seed.Default()
	}
	return seed.LoadFile(file)
}
