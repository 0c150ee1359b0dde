// Package block defines the typed intermediate representation shared by every
// output target. A document is a forest of Block nodes: leaves carry primitive
// content (text, badges, stats), composites carry ordered children, and
// remote-card variants carry the semantic fields an external image service URL
// is later derived from. The variant set is closed: payload types live in a
// Kind-keyed factory table used for decoding and for the exhaustiveness tests
// every consumer runs, so adding a variant surfaces as a test failure in each
// serializer rather than a silent no-op. Blocks are plain values; nothing in
// this package performs I/O or depends on an output format.
package block
