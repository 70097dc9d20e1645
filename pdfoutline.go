// Package pdfoutline infers structured outlines (a title plus H1-H4
// headings with page numbers) from the text layout of PDF documents that
// lack embedded bookmarks. Detection is heuristic: font-size prominence
// relative to the document's dominant body size, boldness, numbering and
// keyword patterns, and a configurable phrase-override table.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., pdf/, sqlite/, extract/).
package pdfoutline
