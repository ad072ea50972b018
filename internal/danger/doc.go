// Package danger defines the result set produced by a Danger run.
//
// A [Results] value holds three ordered categories of [Violation] (fails,
// warnings, messages) plus free-form Markdown blocks. Values are treated as
// read-only input by the renderer; nothing in this module mutates or retains
// them.
//
// Use [Load] or [LoadFile] to decode the results JSON written by Danger, and
// [MeetsThreshold] to decide whether a run should fail CI.
package danger
