package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arisa-app/castdir/internal/export"
	"github.com/arisa-app/castdir/internal/repo"
	"github.com/arisa-app/castdir/internal/service"
)

func newExportCmd() *cobra.Command {
	var (
		format          string
		out             string
		includeInactive bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every cast to a CSV, xlsx or JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if out == "" {
				out = export.Filename(f)
			}

			ctx := cmd.Context()
			_, pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			castRepo := repo.NewCastRepo(pool)
			rows, err := service.NewExportService(castRepo, repo.NewAreaRepo(pool)).Export(ctx, includeInactive)
			if err != nil {
				return err
			}

			file, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if err := export.Write(file, f, rows); err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d casts to %s\n", len(rows), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", string(export.FormatCSV), "output format: csv, xlsx or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: casts.<format>)")
	cmd.Flags().BoolVar(&includeInactive, "include-inactive", false, "include casts that are switched off")
	return cmd
}
