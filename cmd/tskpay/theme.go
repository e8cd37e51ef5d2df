package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the persisted colour scheme",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the current theme mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags, writerSink(cmd.ErrOrStderr()), nil)
			if err != nil {
				return err
			}
			defer app.Close()

			fmt.Fprintln(cmd.OutOrStdout(), app.Preferences.Mode())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Persist a theme mode",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags, writerSink(cmd.ErrOrStderr()), nil)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Preferences.SetThemeString(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.Preferences.Mode())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags, writerSink(cmd.ErrOrStderr()), nil)
			if err != nil {
				return err
			}
			defer app.Close()

			mode, err := app.Preferences.Toggle()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mode)
			return nil
		},
	})

	return cmd
}
