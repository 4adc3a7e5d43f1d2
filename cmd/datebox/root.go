package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
	location   string
	now        string
	overrides  []string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "datebox",
		Short:         "DateBox edits and validates dates with configurable pickers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runEdit(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to an options document")
	cmd.PersistentFlags().StringVar(&flags.location, "tz", "", "IANA time zone dates are shown in (default local)")
	cmd.PersistentFlags().StringVar(&flags.now, "now", "", "Fix the current time (RFC 3339)")
	cmd.PersistentFlags().StringArrayVar(&flags.overrides, "set", nil, "Override an option, e.g. --set type=time")

	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newParseCmd(flags))
	cmd.AddCommand(newStrategyCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
