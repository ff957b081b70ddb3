// Package format names the output formats: the lossless ini text, and
// JSON or YAML outlines of a document.
package format
