package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-readmegen/pkg/engine"
	"github.com/goliatone/go-readmegen/pkg/renderers/markdown"
	"github.com/goliatone/go-readmegen/pkg/renderers/preview"
	"github.com/goliatone/go-readmegen/pkg/theme"
)

var (
	flagOutput string
	flagFormat string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the README once and write it out",
	Long: `Render compiles the template against the profile manifest and writes
the result. The default format is GitHub-flavored markdown; --format html
produces the standalone preview page instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := loadState(false)
		if err != nil {
			return err
		}

		result := engine.Render(state.Template, state.Profile, engine.Options{
			ContinueOnError: cfg.Render.ContinueOnError,
		})
		for _, renderErr := range result.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", renderErr)
		}
		if !result.Success {
			return errors.Join(result.Errors...)
		}

		var doc string
		switch flagFormat {
		case "markdown", "md":
			doc = markdown.Document(*result.Output, markdown.Options{
				Attribution:    cfg.Render.Attribution,
				SectionMarkers: cfg.Render.SectionMarkers,
			})
		case "html":
			ctx := preview.Context{}
			if resolved, err := theme.NewResolver().Resolve(result.Output.Theme, ""); err == nil {
				ctx.Theme = resolved
			}
			doc, err = preview.HTMLDocument(*result.Output, ctx)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format %q (markdown or html)", flagFormat)
		}

		dest := cfg.Output
		if flagOutput != "" {
			dest = flagOutput
		}
		if dest == "-" {
			fmt.Fprint(cmd.OutOrStdout(), doc)
			return nil
		}

		if dir := filepath.Dir(dest); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		if err := os.WriteFile(dest, []byte(doc), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", dest)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output path (- for stdout)")
	renderCmd.Flags().StringVar(&flagFormat, "format", "markdown", "output format: markdown or html")
	rootCmd.AddCommand(renderCmd)
}
