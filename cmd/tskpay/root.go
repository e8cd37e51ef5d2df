package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tskpay/internal/config"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tskpay",
		Short:         "tskPay tracks open obligations of club members and groups",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the dashboard
			if len(args) == 0 {
				return runDashboard(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", config.DefaultPath(), "Path to the configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newDashboardCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
