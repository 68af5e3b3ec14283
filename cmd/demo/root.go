package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"codediffdemo/internal/domain/entities"
	"codediffdemo/internal/infrastructure/i18n"
	"codediffdemo/internal/ports/output"
)

var rootCmd = &cobra.Command{
	Use:           "codediff-demo",
	Short:         "Code diff viewer demo: options panel and display language",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShow,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the options panel in the resolved language",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the locale code that would be activated",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		fmt.Fprintln(cmd.OutOrStdout(), a.locales.Resolve(cmd.Context()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd, resolveCmd, langCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	locale := a.locales.Resolve(cmd.Context())
	if !a.translator.Supports(locale) {
		log.Printf("locale: no message table for %q, using fallback", locale)
	}
	renderPanel(cmd.OutOrStdout(), a.translator, locale)
	return nil
}

// renderPanel writes the demo header, tools and options labels.
func renderPanel(w io.Writer, tr output.T, locale entities.Locale) {
	t := func(key string) string { return tr.T(locale.String(), key, nil) }

	fmt.Fprintln(w, t(i18n.KeyDesc))
	fmt.Fprintf(w, "[%s] [%s] [%s]\n",
		t(i18n.KeyToolsResetText), t(i18n.KeyToolsClearText), t(i18n.KeyToolsLang))
	fmt.Fprintln(w)
	fmt.Fprintln(w, t(i18n.KeyOptionsTitle))
	for _, key := range i18n.OptionKeys {
		fmt.Fprintf(w, "  - %s\n", t(key))
	}
}
