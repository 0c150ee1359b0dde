// Package template defines the declarative document model consumed by the
// render pipeline: a Template is an ordered list of toggleable Sections, each
// carrying a closed type tag plus typed configuration and optional inline
// data. The section type set is fixed; per-type Config and Data payloads live
// in tag-keyed factory tables so manifest decoding and validation never fall
// back to untyped maps.
//
// Templates are values. Every mutation helper copies, edits, and returns a
// new Template, which keeps concurrent readers safe and makes builder undo
// trivial for callers that retain history.
package template
