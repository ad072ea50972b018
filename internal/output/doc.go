// Package output writes rendered Danger comments for display or machine
// consumption.
//
// Two formats are supported:
//   - markdown: the pull-request comment body (default)
//   - json: an envelope with the body, identity marker, and counts
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer], the build id, and the results.
// [WriteReport] handles destination selection.
package output
