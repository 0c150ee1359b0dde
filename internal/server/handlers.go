package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-readmegen/pkg/block"
	"github.com/goliatone/go-readmegen/pkg/profile"
	"github.com/goliatone/go-readmegen/pkg/renderers/markdown"
	"github.com/goliatone/go-readmegen/pkg/renderers/preview"
	"github.com/goliatone/go-readmegen/pkg/store"
	"github.com/goliatone/go-readmegen/pkg/template"
	"github.com/goliatone/go-readmegen/pkg/theme"
)

type stateResponse struct {
	Revision uint64            `json:"revision"`
	Template template.Template `json:"template"`
	Profile  profile.Profile   `json:"profile"`
	Errors   []string          `json:"errors,omitempty"`
}

func toStateResponse(snap store.Snapshot) stateResponse {
	return stateResponse{
		Revision: snap.Revision,
		Template: snap.State.Template,
		Profile:  snap.State.Profile,
		Errors:   errorStrings(snap.Errors),
	}
}

func errorStrings(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = err.Error()
	}
	return out
}

// respondState answers with the post-render state, so every mutation
// endpoint reads its own write.
func (s *Server) respondState(c *gin.Context) {
	snap, err := s.store.Snapshot()
	if err != nil {
		s.mutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStateResponse(snap))
}

func (s *Server) handleState(c *gin.Context) {
	s.respondState(c)
}

func (s *Server) handleOutput(c *gin.Context) {
	snap, err := s.store.Snapshot()
	if err != nil {
		s.mutationError(c, err)
		return
	}
	out := block.Output{}
	if snap.Output != nil {
		out = *snap.Output
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleMarkdown(c *gin.Context) {
	snap, err := s.store.Snapshot()
	if err != nil {
		s.mutationError(c, err)
		return
	}
	out := block.Output{}
	if snap.Output != nil {
		out = *snap.Output
	}
	doc := markdown.Document(out, s.mdOpts)
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(doc))
}

func (s *Server) handlePreviewPage(c *gin.Context) {
	snap, err := s.store.Snapshot()
	if err != nil {
		s.mutationError(c, err)
		return
	}
	out := block.Output{}
	if snap.Output != nil {
		out = *snap.Output
	}

	ctx := preview.Context{AsMarkdown: c.Query("view") == "markdown"}
	if resolved, err := s.themes.Resolve(out.Theme, ""); err == nil {
		ctx.Theme = resolved
	}

	html, err := s.preview.Page(out, ctx)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// handleEvents streams one SSE event per settled render, so browsers can
// refresh the preview without polling.
func (s *Server) handleEvents(c *gin.Context) {
	ch, cancel, err := s.store.Subscribe()
	if err != nil {
		s.mutationError(c, err)
		return
	}
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case snap, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("snapshot", gin.H{
				"revision": snap.Revision,
				"errors":   errorStrings(snap.Errors),
			})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func (s *Server) handleThemes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"themes":  s.themes.Names(),
		"default": theme.DefaultTheme,
	})
}

func (s *Server) handleSetTheme(c *gin.Context) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := s.store.SetTheme(req.Theme); err != nil {
		s.mutationError(c, err)
		return
	}
	s.respondState(c)
}

func (s *Server) handleTemplates(c *gin.Context) {
	type item struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		Sections    int    `json:"sections"`
	}
	catalog := template.Catalog()
	items := make([]item, len(catalog))
	for i, tpl := range catalog {
		items[i] = item{
			ID:          tpl.Metadata.ID,
			Name:        tpl.Metadata.Name,
			Description: tpl.Metadata.Description,
			Sections:    len(tpl.Sections),
		}
	}
	c.JSON(http.StatusOK, gin.H{"templates": items})
}

// handleSetTemplate accepts either {"id": "classic"} to load a starter
// template, or a complete template document.
func (s *Server) handleSetTemplate(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		badRequest(c, err)
		return
	}

	var probe struct {
		ID       string          `json:"id"`
		Metadata json.RawMessage `json:"metadata"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		badRequest(c, err)
		return
	}

	var tpl template.Template
	if probe.ID != "" && len(probe.Metadata) == 0 {
		starter, ok := template.CatalogTemplate(probe.ID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown starter template: " + probe.ID})
			return
		}
		tpl = starter
	} else {
		if err := json.Unmarshal(body, &tpl); err != nil {
			badRequest(c, err)
			return
		}
		tpl = template.Normalize(tpl)
	}

	if err := s.store.SetTemplate(tpl); err != nil {
		s.mutationError(c, err)
		return
	}
	s.respondState(c)
}

func (s *Server) handleSetProfile(c *gin.Context) {
	var prof profile.Profile
	if err := c.ShouldBindJSON(&prof); err != nil {
		badRequest(c, err)
		return
	}
	prof = prof.Touch(time.Now())

	if err := s.store.SetProfile(prof); err != nil {
		s.mutationError(c, err)
		return
	}
	s.respondState(c)
}

func (s *Server) handleAddSection(c *gin.Context) {
	var req struct {
		Type string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	id, err := s.store.AddSection(template.SectionType(req.Type))
	if err != nil {
		s.mutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) handleUpdateSection(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Enabled *bool           `json:"enabled"`
		Title   *string         `json:"title"`
		Config  json.RawMessage `json:"config"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if req.Enabled != nil {
		if err := s.store.ToggleSection(id, *req.Enabled); err != nil {
			s.mutationError(c, err)
			return
		}
	}
	if req.Title != nil {
		if err := s.store.RenameSection(id, *req.Title); err != nil {
			s.mutationError(c, err)
			return
		}
	}
	if len(req.Config) > 0 {
		snap, err := s.store.Snapshot()
		if err != nil {
			s.mutationError(c, err)
			return
		}
		sec, ok := snap.State.Template.Section(id)
		if !ok {
			s.mutationError(c, template.ErrSectionNotFound)
			return
		}
		cfg, err := template.DecodeConfig(sec.Type, req.Config)
		if err != nil {
			badRequest(c, err)
			return
		}
		if err := s.store.ConfigureSection(id, cfg); err != nil {
			s.mutationError(c, err)
			return
		}
	}
	s.respondState(c)
}

func (s *Server) handleMoveSection(c *gin.Context) {
	var req struct {
		To int `json:"to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := s.store.MoveSection(c.Param("id"), req.To); err != nil {
		s.mutationError(c, err)
		return
	}
	s.respondState(c)
}

func (s *Server) handleRemoveSection(c *gin.Context) {
	if err := s.store.RemoveSection(c.Param("id")); err != nil {
		s.mutationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
