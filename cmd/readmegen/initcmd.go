package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-readmegen/pkg/profile"
	"github.com/goliatone/go-readmegen/pkg/template"
	"github.com/goliatone/go-readmegen/pkg/theme"
)

var flagForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively scaffold a profile manifest",
	Long: `Init asks a few questions and writes the profile manifest the other
commands read. Pick a starter template and a theme while you are at it;
both land in the generated readmegen.yaml.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "overwrite existing files")
	rootCmd.AddCommand(initCmd)
}

type initAnswers struct {
	Name     string
	Headline string
	Username string
	About    string
	Template string
	Theme    string
}

func runInit(cmd *cobra.Command, args []string) error {
	profilePath := cfg.Profile
	if !flagForce {
		if _, err := os.Stat(profilePath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", profilePath)
		}
	}

	catalog := template.Catalog()
	starters := make([]string, len(catalog))
	for i, tpl := range catalog {
		starters[i] = tpl.Metadata.ID
	}

	questions := []*survey.Question{
		{
			Name:     "name",
			Prompt:   &survey.Input{Message: "Your name:"},
			Validate: survey.Required,
		},
		{
			Name:   "headline",
			Prompt: &survey.Input{Message: "Headline:", Help: "One line under your name, e.g. \"Backend developer who collects keyboards\"."},
		},
		{
			Name:     "username",
			Prompt:   &survey.Input{Message: "GitHub username:", Help: "Feeds the stats, streak, and language cards."},
			Validate: survey.Required,
		},
		{
			Name:   "about",
			Prompt: &survey.Multiline{Message: "About you (one bullet per line):"},
		},
		{
			Name: "template",
			Prompt: &survey.Select{
				Message: "Starter template:",
				Options: starters,
				Default: "classic",
			},
		},
		{
			Name: "theme",
			Prompt: &survey.Select{
				Message: "Theme:",
				Options: theme.NewResolver().Names(),
				Default: theme.DefaultTheme,
			},
		},
	}

	var answers initAnswers
	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}

	prof := profile.Profile{
		Name:           strings.TrimSpace(answers.Name),
		Headline:       strings.TrimSpace(answers.Headline),
		GitHubUsername: strings.TrimSpace(answers.Username),
	}
	for _, line := range strings.Split(answers.About, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			prof.About = append(prof.About, line)
		}
	}
	prof = prof.Touch(time.Now())

	if err := writeYAML(profilePath, prof); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", profilePath)

	if err := writeInitConfig(cmd, answers); err != nil {
		return err
	}

	renderNow := false
	if err := survey.AskOne(&survey.Confirm{Message: "Render README.md now?", Default: true}, &renderNow); err != nil {
		return err
	}
	if !renderNow {
		fmt.Fprintln(cmd.OutOrStdout(), "run `readmegen render` when you are ready")
		return nil
	}

	cfg.Template = answers.Template
	cfg.Theme = answers.Theme
	return renderCmd.RunE(cmd, nil)
}

// writeInitConfig persists the chosen template and theme so later runs pick
// them up without flags. An existing config file is left alone.
func writeInitConfig(cmd *cobra.Command, answers initAnswers) error {
	const path = "readmegen.yaml"
	if _, err := os.Stat(path); err == nil && !flagForce {
		return nil
	}

	doc := map[string]any{
		"profile":  cfg.Profile,
		"template": answers.Template,
	}
	if answers.Theme != theme.DefaultTheme {
		doc["theme"] = answers.Theme
	}

	if err := writeYAML(path, doc); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func writeYAML(path string, doc any) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
