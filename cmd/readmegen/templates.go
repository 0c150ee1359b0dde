package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-readmegen/pkg/template"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the starter templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSECTIONS\tDESCRIPTION")
		for _, tpl := range template.Catalog() {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				tpl.Metadata.ID, tpl.Metadata.Name, len(tpl.Sections), tpl.Metadata.Description)
		}
		return w.Flush()
	},
}

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the available section types",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TYPE\tDEFAULT TITLE")
		for _, sectionType := range template.AllSectionTypes() {
			fmt.Fprintf(w, "%s\t%s\n", sectionType, template.DefaultTitle(sectionType))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(sectionsCmd)
}
