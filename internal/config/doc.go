// Package config loads and merges dangermd configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (DANGERMD_ID, DANGERMD_FORMAT, DANGERMD_FAIL_ON, etc.)
//  3. Config file ($XDG_CONFIG_HOME/dangermd/config.json, or --config)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write a config file, and
// [SetField] to update a single key.
package config
