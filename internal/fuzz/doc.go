// Package fuzztests houses Go fuzz harnesses that exercise the front of the
// label pipeline (source -> lexer -> parser -> formatter). Its goal is to
// smoke test robustness: no panics, no hangs, no spans pointing outside the
// input, and formatter idempotence on arbitrary bytes.
package fuzztests
