package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-readmegen/internal/config"
	"github.com/goliatone/go-readmegen/pkg/logger"
	"github.com/goliatone/go-readmegen/pkg/template"
)

func setupCLI(t *testing.T) {
	t.Helper()
	appLog = logger.NewNop()
	cfg = config.Config{
		Profile:  "profile.yaml",
		Template: "classic",
		Output:   "README.md",
	}
	t.Cleanup(func() { cfg = config.Config{} })
}

func TestResolveTemplate_StarterID(t *testing.T) {
	setupCLI(t)

	tpl, err := resolveTemplate("classic")
	if err != nil {
		t.Fatalf("resolveTemplate: %v", err)
	}
	if tpl.Metadata.ID != "classic" {
		t.Fatalf("got template %q, want classic", tpl.Metadata.ID)
	}
}

func TestResolveTemplate_ManifestPath(t *testing.T) {
	setupCLI(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	manifest := `
metadata:
  id: my-readme
  name: My Readme
sections:
  - id: hero
    type: hero
    enabled: true
    order: 0
  - id: about
    type: about
    enabled: true
    order: 1
`
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	tpl, err := resolveTemplate(path)
	if err != nil {
		t.Fatalf("resolveTemplate: %v", err)
	}
	if tpl.Metadata.ID != "my-readme" {
		t.Fatalf("got template %q, want my-readme", tpl.Metadata.ID)
	}
	if len(tpl.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(tpl.Sections))
	}
}

func TestResolveTemplate_Unknown(t *testing.T) {
	setupCLI(t)

	if _, err := resolveTemplate("not-a-starter-or-file"); err == nil {
		t.Fatal("expected an error for an unknown template name")
	}
}

func TestImportCustomSections(t *testing.T) {
	setupCLI(t)

	dir := t.TempDir()
	writeSection := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	writeSection("now-playing.md", `---
id: now-playing
title: Now Playing
---
Nothing, the speakers are broken.
`)
	writeSection("shoutouts.md", "Thanks to everyone who stars my repos!\n")

	tpl, err := importCustomSections(template.Classic(), dir)
	if err != nil {
		t.Fatalf("importCustomSections: %v", err)
	}

	sec, ok := tpl.Section("now-playing")
	if !ok {
		t.Fatal("imported section now-playing not found")
	}
	if sec.Type != template.TypeCustom {
		t.Fatalf("got type %q, want custom", sec.Type)
	}
	if sec.Title != "Now Playing" {
		t.Fatalf("got title %q, want Now Playing", sec.Title)
	}
	if _, ok := tpl.Section("shoutouts"); !ok {
		t.Fatal("section id should derive from the file name")
	}
}

func TestImportCustomSections_DuplicateID(t *testing.T) {
	setupCLI(t)

	dir := t.TempDir()
	for _, name := range []string{"a.md", "b.md"} {
		content := "---\nid: dupe\n---\nbody\n"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := importCustomSections(template.Classic(), dir); err == nil {
		t.Fatal("expected duplicate id to fail the import")
	}
}

func TestLoadState_ProfileManifest(t *testing.T) {
	setupCLI(t)

	dir := t.TempDir()
	cfg.Profile = filepath.Join(dir, "profile.yaml")
	profileDoc := `
name: Ada Lovelace
githubUsername: ada
about:
  - I write programs that write programs.
`
	if err := os.WriteFile(cfg.Profile, []byte(profileDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.Theme = "dark"

	state, err := loadState(false)
	if err != nil {
		t.Fatalf("loadState: %v", err)
	}
	if state.Profile.Name != "Ada Lovelace" {
		t.Fatalf("got profile name %q", state.Profile.Name)
	}
	if state.Template.Theme != "dark" {
		t.Fatalf("theme override not applied, got %q", state.Template.Theme)
	}
}

func TestLoadState_MissingProfile(t *testing.T) {
	setupCLI(t)
	cfg.Profile = filepath.Join(t.TempDir(), "absent.yaml")

	if _, err := loadState(true); err == nil {
		t.Fatal("required profile missing should fail")
	}

	state, err := loadState(false)
	if err != nil {
		t.Fatalf("optional profile missing should degrade to empty: %v", err)
	}
	if state.Profile.Name != "" {
		t.Fatalf("expected empty profile, got %q", state.Profile.Name)
	}
}

func TestWatchRelevant(t *testing.T) {
	setupCLI(t)

	profilePath, _ := filepath.Abs("profile.yaml")
	sectionsDir, _ := filepath.Abs("sections")
	files := map[string]struct{}{
		profilePath: {},
		sectionsDir + string(filepath.Separator): {},
	}

	if !watchRelevant("profile.yaml", files) {
		t.Fatal("the profile manifest itself should match")
	}
	if !watchRelevant(filepath.Join("sections", "now-playing.md"), files) {
		t.Fatal("files under the sections dir should match")
	}
	if watchRelevant("unrelated.txt", files) {
		t.Fatal("unrelated files should not match")
	}
	if watchRelevant(strings.TrimSuffix(profilePath, ".yaml")+".bak", files) {
		t.Fatal("sibling files should not match")
	}
}
