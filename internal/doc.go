// Package internal contains the core implementation packages for quizforge.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the quizforge CLI tool.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - config: Configuration management with locale validation
//   - corpus: Quiz folder discovery and record construction
//   - errors: Structured errors with the batch recoverability taxonomy
//   - locale: Locale variation store and metadata resolver
//   - logging: Structured logging on log/slog
//   - regions: Marker-delimited substitution of generated README regions
//   - render: Badge and index fragment builders
//   - snapshot: Content-addressed fingerprint snapshot cache
//   - translate: External translation service client
//   - types: Shared record types
//   - workspace: Practice workspace synchronizer
//
// # Inter-Package Communication
//
// The corpus loader drives the locale variation store and owns QuizRecord
// construction; records are immutable once returned. The resolver derives
// per-locale metadata on demand. The region templater rewrites only
// marker-delimited spans of documentation. The workspace synchronizer is
// the sole writer of workspace files and the only component that updates
// the persisted snapshot; its load/save pair brackets every run.
package internal
