package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tskpay/internal/billing"
	"github.com/alexisbeaulieu97/tskpay/internal/ui/sections"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and dataset",
		Long:  `Load the configuration file and the configured dataset, report validation errors and print the obligation totals per group.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags, writerSink(cmd.ErrOrStderr()), nil)
			if err != nil {
				return err
			}
			defer app.Close()

			data, err := app.dataset()
			if err != nil {
				app.Logger.Error(err, "dataset validation failed")
				return err
			}

			writeSummary(cmd.OutOrStdout(), data)
			return nil
		},
	}

	return cmd
}

func writeSummary(out io.Writer, data *billing.Dataset) {
	totals := data.Totals()
	fmt.Fprintf(out, "Skupni odprti dolg: %s\n", billing.FormatAmount(totals.TotalOpenDebt))
	fmt.Fprintf(out, "Odprte postavke: %s\n", billing.FormatCount(totals.OpenItemsCount))
	fmt.Fprintf(out, "Zapadle postavke: %s\n", billing.FormatCount(totals.OverdueItemsCount))
	fmt.Fprintln(out)

	for _, group := range data.GroupObligations() {
		fmt.Fprintf(out, "%-14s %2d članov  %12s  zapadlo: %s\n",
			group.GroupName, group.MemberCount, billing.FormatAmount(group.TotalOpenDebt),
			sections.OverdueCell(group.OverdueItemsCount, group.OverdueAmount))
	}
}
