// Package cli wires together the Cobra command tree for the dangermd binary.
//
// It defines the root command and all subcommands (render, post, config,
// version), binds flags, reads configuration, renders the comment, and
// returns deterministic exit codes for CI gating.
package cli
