// Package hocr parses hOCR data, an HTML-based standard format for
// representing OCR results, into a navigable typed document tree and
// reconstructs normalized plain text from that tree.
//
// This package provides:
//
// - A typed tree over the hOCR hierarchy: Document → Pages → Areas → Paragraphs → Lines → Words
// - Extraction of bounding boxes and confidence scores from the 'title' attribute micro-syntax
// - Text reconstruction with role-aware separators (pages separated by blank lines, words by spaces)
// - A generic, id-driven tree for documents that stray from the strict hierarchy
//
// Parsing is deliberately lenient. Elements that do not fit the
// hierarchy are skipped, malformed bbox or confidence properties leave
// their fields at defaults, and only unreadable input or a failing
// markup parser surface as errors. Trees are built once and never
// mutated, so they can be shared freely between goroutines.
//
// Key Types:
//
// - Node: one element of the typed tree, carrying id, role, coordinates, confidence and children
// - Role: the six-level hierarchy position (RoleDocument through RoleWord)
// - BBox: a pixel rectangle parsed from the hOCR 'bbox' property
// - GenericNode: element of the loose id-driven tree
// - Summary: per-role counts and confidence statistics for a parsed tree
//
// Main Functions:
//
// - Parse / ParseFile: parse hOCR markup into the typed tree rooted at a Document node
// - ParseGeneric / ParseGenericFile: parse into the generic id-driven tree
// - Summarize: tally nodes per role and aggregate word confidences
package hocr
