// Package template renders a Danger result set as a pull-request comment.
//
// [Template] assembles the fixed document shape: the Fails, Warnings, and
// Messages sections (each suppressed when it has nothing to show), the
// free-form Markdown blocks, the [SignaturePostfix] line, and a hidden link
// carrying the identity marker returned by [IDToString].
//
// The marker "danger-id-{id};" is the join key callers use to find and edit a
// previously posted comment. It appears exactly once per document.
package template
