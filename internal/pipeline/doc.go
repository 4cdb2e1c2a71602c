// Package pipeline turns a Markdown source file into a standalone HTML page.
//
// The stages are:
//   - front matter extraction and line-ending cleanup (Preprocess)
//   - Markdown to HTML through a shared goldmark instance (GoldmarkConverter),
//     optionally filtered by a bluemonday policy (NewSanitizerPolicy)
//   - stylesheet injection into the finished page (CSSInjection)
//
// Emoji handling is not wired here: callers pass the mdemoji extender to
// NewGoldmarkConverter so the same composition serves every file of a batch.
package pipeline
