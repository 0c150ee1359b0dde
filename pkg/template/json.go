package template

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// sectionJSON is the wire shape of a Section. Enabled is a pointer so an
// absent field decodes to true rather than false.
type sectionJSON struct {
	ID      string          `json:"id"`
	Type    SectionType     `json:"type"`
	Title   string          `json:"title,omitempty"`
	Enabled *bool           `json:"enabled,omitempty"`
	Order   int             `json:"order"`
	Config  json.RawMessage `json:"config,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// MarshalJSON encodes the section with its typed payloads inline. Enabled is
// omitted when true, matching the decode default.
func (s Section) MarshalJSON() ([]byte, error) {
	wire := sectionJSON{
		ID:    s.ID,
		Type:  s.Type,
		Title: s.Title,
		Order: s.Order,
	}
	if !s.Enabled {
		enabled := false
		wire.Enabled = &enabled
	}
	if s.Config != nil {
		raw, err := json.Marshal(s.Config)
		if err != nil {
			return nil, fmt.Errorf("template: encode %s config: %w", s.Type, err)
		}
		wire.Config = raw
	}
	if s.Data != nil {
		raw, err := json.Marshal(s.Data)
		if err != nil {
			return nil, fmt.Errorf("template: encode %s data: %w", s.Type, err)
		}
		wire.Data = raw
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes the section and resolves its payloads through the
// tag-keyed tables. Unknown section types and data on config-only types are
// rejected rather than silently degraded to untyped maps.
func (s *Section) UnmarshalJSON(data []byte) error {
	var wire sectionJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("template: decode section: %w", err)
	}

	cfg, err := decodeConfig(wire.Type, wire.Config)
	if err != nil {
		return err
	}

	var inline Data
	if len(wire.Data) > 0 && string(wire.Data) != "null" {
		inline, err = decodeData(wire.Type, wire.Data)
		if err != nil {
			return err
		}
	}

	enabled := true
	if wire.Enabled != nil {
		enabled = *wire.Enabled
	}

	*s = Section{
		ID:      wire.ID,
		Type:    wire.Type,
		Title:   wire.Title,
		Enabled: enabled,
		Order:   wire.Order,
		Config:  cfg,
		Data:    inline,
	}
	return nil
}

// DecodeConfig resolves a raw JSON config document into the concrete config
// struct for the section type. Callers that receive configs without the
// surrounding section envelope use this.
func DecodeConfig(t SectionType, raw json.RawMessage) (Config, error) {
	return decodeConfig(t, raw)
}

func decodeConfig(t SectionType, raw json.RawMessage) (Config, error) {
	factory, ok := configFactories[t]
	if !ok {
		return nil, fmt.Errorf("template: unknown section type %q", t)
	}
	cfg := factory()
	if len(raw) == 0 || string(raw) == "null" {
		if fallback, ok := DefaultConfig(t); ok {
			return fallback, nil
		}
		return cfg, nil
	}
	target := reflect.New(reflect.TypeOf(cfg))
	if err := json.Unmarshal(raw, target.Interface()); err != nil {
		return nil, fmt.Errorf("template: decode %s config: %w", t, err)
	}
	return target.Elem().Interface().(Config), nil
}

func decodeData(t SectionType, raw json.RawMessage) (Data, error) {
	factory, ok := dataFactories[t]
	if !ok {
		return nil, fmt.Errorf("template: section type %q does not accept inline data", t)
	}
	payload := factory()
	target := reflect.New(reflect.TypeOf(payload))
	if err := json.Unmarshal(raw, target.Interface()); err != nil {
		return nil, fmt.Errorf("template: decode %s data: %w", t, err)
	}
	return target.Elem().Interface().(Data), nil
}
