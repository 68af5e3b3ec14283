package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var langCmd = &cobra.Command{
	Use:   "lang",
	Short: "Manage the stored display language",
}

var langSetCmd = &cobra.Command{
	Use:       "set <cn|en>",
	Short:     "Store the display language",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"cn", "en"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.locales.SetLanguage(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), args[0])
		return nil
	},
}

var langToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between Chinese and English",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		next, err := a.locales.ToggleLanguage(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), next)
		return nil
	},
}

var langClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the stored language and follow the host locale",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		return a.locales.ClearLanguage(cmd.Context())
	},
}

func init() {
	langCmd.AddCommand(langSetCmd, langToggleCmd, langClearCmd)
}
