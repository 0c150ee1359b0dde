package readmegen

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-readmegen/pkg/testsupport"
)

func demoProfile() Profile {
	return Profile{
		Name:           "Ada Lovelace",
		Headline:       "Analytical engine programmer",
		GitHubUsername: "ada",
		About:          []string{"I write programs that write programs."},
	}
}

func TestExportMarkdown(t *testing.T) {
	doc, errs := ExportMarkdown(StarterTemplates()[0], demoProfile(), MarkdownOptions{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !strings.Contains(doc, "Ada Lovelace") {
		t.Fatalf("document should mention the profile name:\n%s", doc)
	}
}

func TestExportMarkdown_ReportsSectionFailures(t *testing.T) {
	prof := demoProfile()
	prof.GitHubUsername = ""

	doc, errs := ExportMarkdown(mustCatalog(t, "classic"), prof, MarkdownOptions{})
	if len(errs) == 0 {
		t.Fatal("username-dependent sections should be reported")
	}
	if doc == "" {
		t.Fatal("healthy sections should still render")
	}
	if strings.Contains(doc, "github-readme-stats") {
		t.Fatal("failing stats section should be dropped from the document")
	}
}

func TestExportMarkdown_FromManifests(t *testing.T) {
	tpl := testsupport.MustLoadTemplate(t, filepath.Join("testdata", "template.yaml"))
	prof := testsupport.MustLoadProfile(t, filepath.Join("testdata", "profile.yaml"))

	doc, errs := ExportMarkdown(tpl, prof, MarkdownOptions{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	for _, want := range []string{
		"Grace Hopper",
		"Currently learning: COBOL",
		"https://github.com/gracehopper",
		"https://www.linkedin.com/in/grace-hopper",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document should contain %q:\n%s", want, doc)
		}
	}
	if strings.Contains(doc, "github-readme-stats") {
		t.Fatal("disabled stats section should not render")
	}

	again, _ := ExportMarkdown(tpl, prof, MarkdownOptions{})
	if diff := testsupport.CompareGolden(doc, again); diff != "" {
		t.Fatalf("export is not deterministic (-first +second):\n%s", diff)
	}
}

func TestPreviewHTML(t *testing.T) {
	html, errs := PreviewHTML(mustCatalog(t, "minimal"), demoProfile())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !strings.Contains(html, "readme-preview") {
		t.Fatal("page should carry the preview document root")
	}
	if !strings.Contains(html, "<!DOCTYPE html>") {
		t.Fatal("page should be a standalone HTML document")
	}
}

func TestPreviewAssetsFS(t *testing.T) {
	data, err := fs.ReadFile(PreviewAssetsFS(), "readmegen-preview.css")
	if err != nil {
		t.Fatalf("expected the stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), ".readme-preview") {
		t.Fatal("stylesheet should style the preview root")
	}
}

func TestStarterTemplates(t *testing.T) {
	ids := make(map[string]bool)
	for _, tpl := range StarterTemplates() {
		ids[tpl.Metadata.ID] = true
	}
	for _, want := range []string{"minimal", "classic", "full"} {
		if !ids[want] {
			t.Fatalf("catalog should include %q", want)
		}
	}
}

func mustCatalog(t *testing.T, id string) Template {
	t.Helper()
	for _, tpl := range StarterTemplates() {
		if tpl.Metadata.ID == id {
			return tpl
		}
	}
	t.Fatalf("starter template %q not found", id)
	return Template{}
}
