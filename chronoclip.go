// Package chronoclip provides temporal reference extraction and event
// context inference for unstructured page content. It detects date and
// time expressions (absolute, localized long-form, era-based, relative,
// bare month-day, bare time-of-day), resolves overlaps into a single
// ordered span sequence, and infers the surrounding real-world event
// (title, description, location, resolved start/end) from the span's
// position in a content tree.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// readability/, yaml/), with pure detection logic in detect/ and
// document-wide orchestration in scan/.
package chronoclip
