// Dangermd renders Danger results as a pull-request comment.
//
// The comment carries a hidden "danger-id-{id};" marker so later runs with
// the same id edit the existing comment instead of posting a new one.
//
// Usage:
//
//	dangermd render --results danger-results.json --id ci       # print the comment
//	dangermd render --results - --format json                   # JSON envelope from stdin
//	dangermd post 42 --results danger-results.json --id ci      # create or update on PR #42
//	dangermd post 42 --results r.json --remove-when-empty       # delete when nothing to report
//	dangermd config init                                        # write a default config file
package main
