// Command hrctl runs the statutory payroll calculators from a terminal and
// loads holiday calendars into the HRMS database.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/asnhr/hrms/internal/infrastructure/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

type rootOptions struct {
	output   string
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "hrctl",
		Short:         "HRMS payroll calculators and data tools",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch opts.output {
			case "text", "json":
				return nil
			default:
				return fmt.Errorf("--output must be text or json, got %q", opts.output)
			}
		},
	}
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "text", "Output format: text or json")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newCTCCmd(opts),
		newTaxCmd(opts),
		newBonusCmd(opts),
		newHolidaysCmd(opts),
	)
	return root
}

func (o *rootOptions) logger() (*zap.Logger, error) {
	return logger.New(&logger.Config{
		Level:      o.logLevel,
		Format:     "console",
		Output:     "stderr",
		TimeFormat: "2006-01-02 15:04:05",
	})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
