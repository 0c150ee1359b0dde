package render

import "strings"

// Messages flattens compile and render errors into display strings, trimming
// whitespace and dropping duplicates while preserving first-seen order. The
// preview server and CLI both surface section failures through this.
func Messages(errs []error) []string {
	raw := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			raw = append(raw, err.Error())
		}
	}
	return normalizeMessages(raw)
}

// MergeMessages concatenates message slices with the same normalization
// Messages applies.
func MergeMessages(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	seen := make(map[string]struct{}, len(messages))
	out := make([]string, 0, len(messages))
	for _, msg := range messages {
		msg = strings.TrimSpace(msg)
		if msg == "" {
			continue
		}
		if _, dup := seen[msg]; dup {
			continue
		}
		seen[msg] = struct{}{}
		out = append(out, msg)
	}
	return out
}
