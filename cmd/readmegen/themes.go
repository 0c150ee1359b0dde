package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-readmegen/pkg/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := theme.NewResolver()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCARD THEME\tGRAPH THEME\tBADGE STYLE")
		for _, name := range resolver.Names() {
			resolved, err := resolver.Resolve(name, "")
			if err != nil {
				return err
			}
			marker := ""
			if name == theme.DefaultTheme {
				marker = " (default)"
			}
			fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\n",
				name, marker, resolved.CardTheme, resolved.GraphTheme, resolved.BadgeStyle)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
