package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wealthpath/networth-projector/internal/calculation"
	"github.com/wealthpath/networth-projector/internal/config"
)

type rootOptions struct {
	logLevel string
	debug    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "wealthpath",
		Short: "Household net worth projector",
		Long: `wealthpath projects a household's liquid savings, fixed assets and total
net worth year by year. It compares return scenarios, applies life events
paid in cash or financed by loans, and measures progress toward a target.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log a per-year breakdown of every projection")

	cmd.AddCommand(
		newCalculateCmd(opts),
		newProjectCmd(opts),
		newLoanCmd(),
		newExampleCmd(),
		newValidateCmd(),
		newServeCmd(),
	)
	return cmd
}

// logger writes to the command's error stream so reports on stdout stay clean
func (o *rootOptions) logger(cmd *cobra.Command) *logrus.Logger {
	level := o.logLevel
	if o.debug {
		level = "debug"
	}
	logger := config.NewLogger(level, false)
	logger.SetOutput(cmd.ErrOrStderr())
	return logger
}

func (o *rootOptions) engine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.Debug = o.debug
	engine.SetLogger(o.logger(cmd))
	return engine
}
