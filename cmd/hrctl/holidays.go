package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	appholiday "github.com/asnhr/hrms/internal/application/holiday"
	"github.com/asnhr/hrms/internal/infrastructure/config"
	"github.com/asnhr/hrms/internal/infrastructure/persistence"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newHolidaysCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "Manage the holiday calendar",
	}
	cmd.AddCommand(newHolidaysImportCmd(opts))
	return cmd
}

func newHolidaysImportCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "import <calendar.yaml>",
		Short: "Load a YAML holiday calendar into the database",
		Long: `Load a YAML holiday calendar into the database. Dates that already
have a holiday are skipped. The database is configured the same way as the
server (config.toml and HRMS_ environment variables).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			entries, err := appholiday.ParseCalendar(f)
			if err != nil {
				return err
			}

			if dryRun {
				if opts.output == "json" {
					return writeJSON(cmd.OutOrStdout(), entries)
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				for _, e := range entries {
					optional := ""
					if e.IsOptional {
						optional = "optional"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", e.Date.Format("Mon 02 Jan 2006"), e.Name, optional)
				}
				return w.Flush()
			}

			log, err := opts.logger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			db, err := persistence.NewDatabase(&cfg.Database, nil)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					log.Warn("Failed to close database", zap.Error(err))
				}
			}()

			svc := appholiday.NewHolidayService(persistence.NewGormHolidayRepository(db.DB), log)
			result, err := svc.Import(context.Background(), entries)
			if err != nil {
				return err
			}
			if opts.output == "json" {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created %d, skipped %d, failed %d\n", result.Created, result.Skipped, len(result.Errors))
			for _, e := range result.Errors {
				fmt.Fprintf(out, "  #%d %s: %s\n", e.Index, e.Name, e.Message)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and print the calendar without touching the database")
	return cmd
}
