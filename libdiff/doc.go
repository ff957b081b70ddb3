// Package libdiff compares ini documents, either as text or as outlines of
// their instructions.
package libdiff
