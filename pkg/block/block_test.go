package block

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSamples_CoverEveryKindOnce(t *testing.T) {
	t.Helper()

	seen := make(map[Kind]int, len(allKinds))
	for _, sample := range Samples() {
		seen[sample.Kind]++
		if sample.Payload == nil {
			t.Fatalf("sample %s has nil payload", sample.Kind)
		}
		if got := sample.Payload.payloadKind(); got != sample.Kind {
			t.Fatalf("sample %s payload reports kind %s", sample.Kind, got)
		}
	}

	for _, kind := range AllKinds() {
		if seen[kind] != 1 {
			t.Fatalf("kind %s sampled %d times, want exactly 1", kind, seen[kind])
		}
	}
}

func TestUnmarshal_VisibleDefaultsTrue(t *testing.T) {
	t.Helper()

	payload := []byte(`{"id":"b1","kind":"text","data":{"content":"hi"}}`)

	var b Block
	if err := json.Unmarshal(payload, &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !b.Visible {
		t.Fatalf("visible should default to true")
	}
	text, ok := b.Payload.(Text)
	if !ok {
		t.Fatalf("payload type %T, want Text", b.Payload)
	}
	if text.Content != "hi" {
		t.Fatalf("content %q", text.Content)
	}
}

func TestJSONRoundTrip_PreservesTreeShape(t *testing.T) {
	t.Helper()

	original := New("root", Row{Gap: 2},
		New("child-a", Badge{Label: "go", Message: "1.24", Color: "00ADD8"}),
		New("child-b", Text{Content: "beside"}).Hidden(),
	)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Block
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshal_RejectsUnknownKind(t *testing.T) {
	t.Helper()

	var b Block
	err := json.Unmarshal([]byte(`{"id":"x","kind":"hologram"}`), &b)
	if err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestWalk_PrunesSubtrees(t *testing.T) {
	t.Helper()

	tree := New("root", Column{},
		New("skip-me", Row{},
			New("unreachable", Text{Content: "below pruned row"}),
		),
		New("keep", Text{Content: "kept"}),
	)

	var visited []string
	Walk(tree, func(b Block) bool {
		visited = append(visited, b.ID)
		return b.ID != "skip-me"
	})

	want := []string{"root", "skip-me", "keep"}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Fatalf("visit order mismatch (-want +got):\n%s", diff)
	}
}

func TestKind_CompositeAndRemoteCardPartition(t *testing.T) {
	t.Helper()

	for _, kind := range AllKinds() {
		if !kind.Valid() {
			t.Fatalf("kind %s missing from payload table", kind)
		}
		if kind.Composite() && kind.RemoteCard() {
			t.Fatalf("kind %s cannot be both composite and remote card", kind)
		}
	}
	if Kind("hologram").Valid() {
		t.Fatalf("unknown kind reported valid")
	}
}
