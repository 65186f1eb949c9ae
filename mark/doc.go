// Package mark parses line-oriented markdown text into a structured,
// formatting-annotated document model.
//
// The model is deliberately reduced: each source line is classified as
// exactly one kind (header, paragraph, list item, code, quote, rule, table,
// or empty), and the inline markup of a line is parsed into an ordered
// sequence of styled runs. The parser accepts any input; malformed markup
// degrades to literal text rather than producing an error.
//
// Parsing is a pure pipeline per document. The only multi-line state, the
// code fence flag and the ordered-list counters, is owned by the parse call
// itself, so independent documents may be parsed concurrently.
package mark
