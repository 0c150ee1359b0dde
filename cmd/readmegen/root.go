package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-readmegen/internal/config"
	"github.com/goliatone/go-readmegen/pkg/logger"
	"github.com/goliatone/go-readmegen/pkg/profile"
	"github.com/goliatone/go-readmegen/pkg/store"
	"github.com/goliatone/go-readmegen/pkg/template"
)

var (
	cfgFile      string
	flagProfile  string
	flagTemplate string
	flagTheme    string

	cfg    config.Config
	appLog logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "readmegen",
	Short: "Generate and preview GitHub profile READMEs",
	Long: `readmegen turns a profile manifest and a section template into a
GitHub profile README. Render straight to markdown, or serve a live
preview with an editing API while you iterate.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("profile") {
			cfg.Profile = flagProfile
		}
		if flags.Changed("template") {
			cfg.Template = flagTemplate
		}
		if flags.Changed("theme") {
			cfg.Theme = flagTheme
		}

		appLog = logger.NewZapLogger(cfg.Log.Env)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./readmegen.yaml)")
	pf.StringVarP(&flagProfile, "profile", "p", "", "profile manifest path")
	pf.StringVarP(&flagTemplate, "template", "t", "", "starter template id or manifest path")
	pf.StringVar(&flagTheme, "theme", "", "theme override")
}

// resolveTemplate accepts a starter id from the catalog or a manifest path.
func resolveTemplate(name string) (template.Template, error) {
	if tpl, ok := template.CatalogTemplate(name); ok {
		return tpl, nil
	}
	if _, err := os.Stat(name); err == nil {
		return template.LoadFile(name)
	}
	return template.Template{}, fmt.Errorf("unknown template %q: not a starter id or a manifest file", name)
}

// loadState assembles the editing state the configuration describes:
// template, theme override, profile manifest, and any imported custom
// sections. A missing profile at the default location degrades to an empty
// profile; a path the user asked for explicitly must exist.
func loadState(profileRequired bool) (store.State, error) {
	tpl, err := resolveTemplate(cfg.Template)
	if err != nil {
		return store.State{}, err
	}
	if cfg.Theme != "" {
		tpl.Theme = cfg.Theme
	}

	if cfg.Sections != "" {
		tpl, err = importCustomSections(tpl, cfg.Sections)
		if err != nil {
			return store.State{}, err
		}
	}

	prof := profile.Profile{}
	if cfg.Profile != "" {
		switch _, statErr := os.Stat(cfg.Profile); {
		case statErr == nil:
			prof, err = profile.LoadFile(cfg.Profile)
			if err != nil {
				return store.State{}, err
			}
		case profileRequired:
			return store.State{}, fmt.Errorf("profile manifest %s: %w", cfg.Profile, statErr)
		default:
			appLog.Warn("profile manifest missing, starting empty")
		}
	}

	return store.State{Template: tpl, Profile: prof}, nil
}

// importCustomSections appends the sections found in dir to the template.
// Frontmatter orders interleave with the template's own orders; duplicate
// ids surface through validation.
func importCustomSections(tpl template.Template, dir string) (template.Template, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return template.Template{}, fmt.Errorf("sections directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return template.Template{}, fmt.Errorf("sections path %s is not a directory", dir)
	}

	custom, err := template.LoadCustomSections(os.DirFS(dir))
	if err != nil {
		return template.Template{}, err
	}
	if len(custom) == 0 {
		return tpl, nil
	}

	tpl.Sections = append(tpl.Sections, custom...)
	tpl = template.Normalize(tpl)
	if issues := template.Validate(tpl); len(issues) > 0 {
		return template.Template{}, fmt.Errorf("after importing %s: %s", dir, issues[0])
	}
	return tpl, nil
}
