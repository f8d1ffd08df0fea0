// Package normalisers provides implementations of the Normaliser interface.
// Each normaliser knows how to turn one MIME type into Markdown.
//
// Normalisers are registered with a Registry at startup.
package normalisers
