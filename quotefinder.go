// Package quotefinder finds a half-remembered quote in a document.
// A user loads a document, describes a quote or scene from memory, picks
// one of the candidate sections a language model suggests, and gets back
// the passage with its approximate location.
//
// This package contains domain types, interfaces and the workflow state
// machine following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g.,
// gemini/, pdf/, bubbletea/).
package quotefinder
