package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wealthpath/networth-projector/internal/config"
	"github.com/wealthpath/networth-projector/internal/output"
)

func newCalculateCmd(root *rootOptions) *cobra.Command {
	var (
		format    string
		outputDir string
	)
	cmd := &cobra.Command{
		Use:   "calculate <config-file>",
		Short: "Run every scenario in a configuration file",
		Long: `Run every scenario in a configuration file and write a report.
Console formats print to stdout; other formats are written to --output-dir.
Use --format all to write console, json, detailed-csv and html reports.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			results, err := root.engine(cmd).RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("calculation failed: %w", err)
			}

			name := output.NormalizeFormatName(format)
			if name == "console" || name == "console-lite" {
				out, err := output.GetFormatterByName(name).Format(results)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}

			files, err := output.GenerateReport(results, format, outputDir)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, console-lite, json, csv, detailed-csv, html, all)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "reports", "directory for written reports")
	return cmd
}
