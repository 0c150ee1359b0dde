package preview

import (
	"strings"
	"testing"
)

func TestNodeHTML_EscapesText(t *testing.T) {
	n := Element("p", TextNode(`a < b & "c"`))
	got := n.HTML()
	if got != "<p>a &lt; b &amp; &#34;c&#34;</p>" {
		t.Fatalf("escaped text = %q", got)
	}
}

func TestNodeHTML_RawSkipsEscaping(t *testing.T) {
	n := Element("div", RawNode("<em>kept</em>"))
	if got := n.HTML(); got != "<div><em>kept</em></div>" {
		t.Fatalf("raw html = %q", got)
	}
}

func TestNodeHTML_AttrsSorted(t *testing.T) {
	n := Element("img").Attr("src", "a.png").Attr("loading", "lazy").Attr("alt", "a")
	want := `<img alt="a" loading="lazy" src="a.png">`
	if got := n.HTML(); got != want {
		t.Fatalf("attrs = %q, want %q", got, want)
	}
}

func TestNodeHTML_AttrValuesEscaped(t *testing.T) {
	n := Element("a", TextNode("x")).Attr("href", `https://example.com/?a=1&b="2"`)
	got := n.HTML()
	if !strings.Contains(got, "a=1&amp;b=&#34;2&#34;") {
		t.Fatalf("attr value not escaped: %q", got)
	}
}

func TestNodeHTML_VoidElements(t *testing.T) {
	if got := Element("hr").HTML(); got != "<hr>" {
		t.Fatalf("hr = %q", got)
	}
	if got := Element("br").HTML(); got != "<br>" {
		t.Fatalf("br = %q", got)
	}
	if got := Element("img").Attr("src", "x").HTML(); got != `<img src="x">` {
		t.Fatalf("img = %q", got)
	}
}

func TestNodeHTML_NilIsEmpty(t *testing.T) {
	var n *Node
	if got := n.HTML(); got != "" {
		t.Fatalf("nil node = %q", got)
	}
}

func TestNode_ClassAndStyleAccumulate(t *testing.T) {
	n := Element("div").Class("row").Class("wide").Style("gap", "8px").Style("color", "red")
	got := n.HTML()
	if !strings.Contains(got, `class="row wide"`) {
		t.Fatalf("classes = %q", got)
	}
	if !strings.Contains(got, `style="gap:8px;color:red"`) {
		t.Fatalf("styles = %q", got)
	}
}

func TestElement_DropsNilChildren(t *testing.T) {
	n := Element("div", nil, TextNode("x"), nil).Append(nil, TextNode("y"))
	if got := n.HTML(); got != "<div>xy</div>" {
		t.Fatalf("children = %q", got)
	}
}

func TestNodeHTML_Deterministic(t *testing.T) {
	n := Element("div").Attr("b", "2").Attr("a", "1").Attr("c", "3")
	first := n.HTML()
	for i := 0; i < 16; i++ {
		if got := n.HTML(); got != first {
			t.Fatalf("unstable serialization: %q vs %q", first, got)
		}
	}
}
