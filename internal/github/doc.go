// Package github creates, updates, and removes the Danger comment on a pull
// request.
//
// Previously posted comments are located by the identity marker that
// template.IDToString embeds in every rendered body, so repeated runs for the
// same build id edit one comment in place instead of stacking new ones. The
// client wraps go-github and reads GITHUB_TOKEN and GITHUB_API_URL from the
// environment.
package github
