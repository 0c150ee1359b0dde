package block

// RenderedSection is the per-section result of one render pass: the section's
// identity plus the block tree its compiler produced.
type RenderedSection struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Title   string  `json:"title,omitempty"`
	Visible bool    `json:"visible"`
	Blocks  []Block `json:"blocks"`
}

// Output is an entire rendered document. It is ephemeral: every render pass
// produces a fresh value that wholly replaces the previous one, never an
// incremental patch.
type Output struct {
	TemplateID string            `json:"templateId,omitempty"`
	Theme      string            `json:"theme,omitempty"`
	Sections   []RenderedSection `json:"sections"`
}

// VisibleSections returns the sections that should reach an output target.
func (o Output) VisibleSections() []RenderedSection {
	out := make([]RenderedSection, 0, len(o.Sections))
	for _, section := range o.Sections {
		if section.Visible {
			out = append(out, section)
		}
	}
	return out
}

// Section returns the rendered section with the given id.
func (o Output) Section(id string) (RenderedSection, bool) {
	for _, section := range o.Sections {
		if section.ID == id {
			return section, true
		}
	}
	return RenderedSection{}, false
}
