package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-readmegen/pkg/profile"
	"github.com/goliatone/go-readmegen/pkg/store"
	"github.com/goliatone/go-readmegen/pkg/template"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	st := store.New(store.State{
		Template: template.Classic(),
		Profile: profile.Profile{
			Name:           "Ada Lovelace",
			GitHubUsername: "ada",
			About:          []string{"I write programs that write programs."},
		},
	})
	t.Cleanup(func() { _ = st.Close() })

	srv, err := New(st)
	require.NoError(t, err)
	return srv.Router()
}

func perform(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) stateResponse {
	t.Helper()
	var resp stateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetState(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(t, router, http.MethodGet, "/api/state", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeState(t, rec)
	assert.GreaterOrEqual(t, resp.Revision, uint64(1))
	assert.Equal(t, "classic", resp.Template.Metadata.ID)
	assert.Equal(t, "Ada Lovelace", resp.Profile.Name)
}

func TestGetOutput(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(t, router, http.MethodGet, "/api/output", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		TemplateID string `json:"templateId"`
		Sections   []struct {
			ID      string `json:"id"`
			Visible bool   `json:"visible"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "classic", out.TemplateID)
	assert.NotEmpty(t, out.Sections)
}

func TestGetMarkdown(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(t, router, http.MethodGet, "/api/markdown", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, rec.Body.String(), "Ada Lovelace")
	assert.Contains(t, rec.Body.String(), "Generated with go-readmegen")
}

func TestPreviewPage(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(t, router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "readme-preview")
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")

	source := perform(t, router, http.MethodGet, "/?view=markdown", nil)
	require.Equal(t, http.StatusOK, source.Code)
	assert.Contains(t, source.Body.String(), "markdown-source")
}

func TestAssetsServed(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(t, router, http.MethodGet, "/assets/readmegen-preview.css", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".readme-preview")
}

func TestSetTheme(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(t, router, http.MethodPut, "/api/theme", gin.H{"theme": "dark"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dark", decodeState(t, rec).Template.Theme)

	bad := perform(t, router, http.MethodPut, "/api/theme", gin.H{"theme": "sparkle-pony"})
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestListThemes(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(t, router, http.MethodGet, "/api/themes", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Themes  []string `json:"themes"`
		Default string   `json:"default"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Themes, "dark")
	assert.Equal(t, "default", resp.Default)
}

func TestListTemplates(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(t, router, http.MethodGet, "/api/templates", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Templates []struct {
			ID       string `json:"id"`
			Sections int    `json:"sections"`
		} `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	ids := make([]string, len(resp.Templates))
	for i, tpl := range resp.Templates {
		ids[i] = tpl.ID
		assert.Positive(t, tpl.Sections)
	}
	assert.Contains(t, ids, "minimal")
	assert.Contains(t, ids, "classic")
	assert.Contains(t, ids, "full")
}

func TestSetTemplate_FromCatalog(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(t, router, http.MethodPut, "/api/template", gin.H{"id": "minimal"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "minimal", decodeState(t, rec).Template.Metadata.ID)

	missing := perform(t, router, http.MethodPut, "/api/template", gin.H{"id": "no-such-starter"})
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestSetTemplate_FullDocument(t *testing.T) {
	router := newTestRouter(t)

	tpl := template.Minimal()
	tpl.Metadata.ID = "custom"
	tpl.Metadata.Name = "Custom"

	rec := perform(t, router, http.MethodPut, "/api/template", tpl)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "custom", decodeState(t, rec).Template.Metadata.ID)
}

func TestSetProfile(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(t, router, http.MethodPut, "/api/profile", gin.H{
		"name":           "Grace Hopper",
		"githubUsername": "grace",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeState(t, rec)
	assert.Equal(t, "Grace Hopper", resp.Profile.Name)
	assert.False(t, resp.Profile.UpdatedAt.IsZero(), "profile writes stamp UpdatedAt")

	md := perform(t, router, http.MethodGet, "/api/markdown", nil)
	assert.Contains(t, md.Body.String(), "Grace Hopper")
}

func TestSectionLifecycle(t *testing.T) {
	router := newTestRouter(t)

	created := perform(t, router, http.MethodPost, "/api/sections", gin.H{"type": "quote"})
	require.Equal(t, http.StatusCreated, created.Code)

	var mint struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &mint))
	require.True(t, strings.HasPrefix(mint.ID, "quote-"))

	patched := perform(t, router, http.MethodPatch, "/api/sections/"+mint.ID, gin.H{
		"title":   "Words to Live By",
		"enabled": false,
	})
	require.Equal(t, http.StatusOK, patched.Code)

	sec, ok := decodeState(t, patched).Template.Section(mint.ID)
	require.True(t, ok)
	assert.Equal(t, "Words to Live By", sec.Title)
	assert.False(t, sec.Enabled)

	deleted := perform(t, router, http.MethodDelete, "/api/sections/"+mint.ID, nil)
	assert.Equal(t, http.StatusNoContent, deleted.Code)

	gone := perform(t, router, http.MethodPatch, "/api/sections/"+mint.ID, gin.H{"enabled": true})
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestAddSection_UnknownType(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(t, router, http.MethodPost, "/api/sections", gin.H{"type": "holograms"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSection_Config(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(t, router, http.MethodPatch, "/api/sections/github-stats", gin.H{
		"config": gin.H{"showIcons": true, "hideBorder": true},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	sec, ok := decodeState(t, rec).Template.Section("github-stats")
	require.True(t, ok)
	cfg, isStats := sec.Config.(template.GitHubStatsConfig)
	require.True(t, isStats)
	assert.True(t, cfg.ShowIcons)
	assert.True(t, cfg.HideBorder)
}

func TestMoveSection(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(t, router, http.MethodPost, "/api/sections/projects/move", gin.H{"to": 0})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeState(t, rec)
	sorted := resp.Template.SortedSections()
	require.NotEmpty(t, sorted)
	assert.Equal(t, "projects", sorted[0].ID)

	missing := perform(t, router, http.MethodPost, "/api/sections/nope/move", gin.H{"to": 0})
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestEvents_StreamsSnapshots(t *testing.T) {
	router := newTestRouter(t)

	ts := httptest.NewServer(router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/events")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	// The subscription delivers the current snapshot immediately.
	type result struct {
		line string
		err  error
	}
	lines := make(chan result, 4)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			lines <- result{line: scanner.Text()}
		}
		lines <- result{err: scanner.Err()}
	}()

	deadline := time.After(3 * time.Second)
	for {
		select {
		case got := <-lines:
			require.NoError(t, got.err)
			if strings.HasPrefix(got.line, "event:") {
				assert.Contains(t, got.line, "snapshot")
				return
			}
		case <-deadline:
			t.Fatal("no SSE event arrived")
		}
	}
}
