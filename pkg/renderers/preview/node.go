package preview

import (
	"html"
	"sort"
	"strings"
)

// Node is one element of the preview tree: either an element with a tag,
// attributes and children, or a text node carrying content. Raw text nodes
// skip escaping and must only hold markup that already passed sanitization.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Text     string
	Raw      bool
	Children []*Node
}

// Element returns an element node with the given children. Nil children are
// dropped so builders can append conditionally without filtering.
func Element(tag string, children ...*Node) *Node {
	n := &Node{Tag: tag}
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// TextNode returns an escaped text node.
func TextNode(text string) *Node {
	return &Node{Text: text}
}

// RawNode returns a text node emitted verbatim. Callers sanitize first.
func RawNode(markup string) *Node {
	return &Node{Text: markup, Raw: true}
}

// Attr sets an attribute and returns the node for chaining. Empty values are
// kept only for boolean-ish attributes the caller explicitly wants.
func (n *Node) Attr(key, value string) *Node {
	if n == nil || key == "" {
		return n
	}
	if n.Attrs == nil {
		n.Attrs = make(map[string]string, 4)
	}
	n.Attrs[key] = value
	return n
}

// Class appends a class token, preserving any already present.
func (n *Node) Class(class string) *Node {
	if n == nil || class == "" {
		return n
	}
	if existing := n.Attrs["class"]; existing != "" {
		return n.Attr("class", existing+" "+class)
	}
	return n.Attr("class", class)
}

// Style appends a CSS declaration to the style attribute.
func (n *Node) Style(property, value string) *Node {
	if n == nil || property == "" || value == "" {
		return n
	}
	decl := property + ":" + value
	if existing := n.Attrs["style"]; existing != "" {
		return n.Attr("style", existing+";"+decl)
	}
	return n.Attr("style", decl)
}

// Append adds children, skipping nils, and returns the node.
func (n *Node) Append(children ...*Node) *Node {
	if n == nil {
		return nil
	}
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// voidElements have no closing tag in HTML.
var voidElements = map[string]bool{
	"br":  true,
	"hr":  true,
	"img": true,
}

// HTML serializes the node deterministically: attributes in sorted order,
// text escaped unless marked raw.
func (n *Node) HTML() string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	n.writeHTML(&sb)
	return sb.String()
}

func (n *Node) writeHTML(sb *strings.Builder) {
	if n.Tag == "" {
		if n.Raw {
			sb.WriteString(n.Text)
		} else {
			sb.WriteString(html.EscapeString(n.Text))
		}
		return
	}

	sb.WriteString("<")
	sb.WriteString(n.Tag)
	for _, key := range sortedAttrKeys(n.Attrs) {
		sb.WriteString(" ")
		sb.WriteString(key)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(n.Attrs[key]))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")

	if voidElements[n.Tag] {
		return
	}

	for _, child := range n.Children {
		child.writeHTML(sb)
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteString(">")
}

func sortedAttrKeys(attrs map[string]string) []string {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
