package block

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Block is one node of the content tree. Every node carries a stable id and a
// visibility gate; an invisible block contributes nothing to any output, at
// any nesting depth. Children are only meaningful on composite kinds.
type Block struct {
	ID       string
	Kind     Kind
	Visible  bool
	Payload  Payload
	Children []Block
}

// New returns a visible block for the payload's kind. Children are accepted on
// any kind but only composite kinds render them.
func New(id string, payload Payload, children ...Block) Block {
	b := Block{
		ID:      id,
		Kind:    payload.payloadKind(),
		Visible: true,
		Payload: payload,
	}
	if len(children) > 0 {
		b.Children = children
	}
	return b
}

// Hidden returns a copy of the block with the visibility gate closed.
func (b Block) Hidden() Block {
	b.Visible = false
	return b
}

// Walk visits the block and its descendants depth-first in document order.
// Returning false from fn prunes that subtree.
func Walk(b Block, fn func(Block) bool) {
	if !fn(b) {
		return
	}
	for _, child := range b.Children {
		Walk(child, fn)
	}
}

type blockJSON struct {
	ID       string          `json:"id"`
	Kind     Kind            `json:"kind"`
	Visible  *bool           `json:"visible,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
	Children []Block         `json:"children,omitempty"`
}

// MarshalJSON encodes the block with its payload under "data". Visibility is
// omitted when true so stored documents stay terse.
func (b Block) MarshalJSON() ([]byte, error) {
	out := blockJSON{
		ID:       b.ID,
		Kind:     b.Kind,
		Children: b.Children,
	}
	if !b.Visible {
		visible := false
		out.Visible = &visible
	}
	if b.Payload != nil {
		data, err := json.Marshal(b.Payload)
		if err != nil {
			return nil, fmt.Errorf("block: marshal %s payload: %w", b.Kind, err)
		}
		out.Data = data
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a block, resolving the payload type through the kind
// table. Unknown kinds are an error; absent "visible" means visible.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw blockJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	payload, err := decodePayload(raw.Kind, raw.Data)
	if err != nil {
		return err
	}

	b.ID = raw.ID
	b.Kind = raw.Kind
	b.Visible = raw.Visible == nil || *raw.Visible
	b.Payload = payload
	b.Children = raw.Children
	return nil
}

func decodePayload(kind Kind, data []byte) (Payload, error) {
	factory, ok := payloadFactories[kind]
	if !ok {
		return nil, fmt.Errorf("block: unknown kind %q", kind)
	}
	payload := factory()
	if len(data) == 0 {
		return payload, nil
	}

	target := reflect.New(reflect.TypeOf(payload))
	if err := json.Unmarshal(data, target.Interface()); err != nil {
		return nil, fmt.Errorf("block: decode %s payload: %w", kind, err)
	}
	return target.Elem().Interface().(Payload), nil
}
