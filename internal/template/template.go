package template

import (
	"strings"

	"github.com/dshills/dangermd/internal/danger"
)

// SignaturePostfix is appended to every generated comment.
const SignaturePostfix = "_Generated by 🚫 [dangerJS](http://github.com/danger/danger-js/)_"

var codeTags = strings.NewReplacer("<code>", "`", "</code>", "`")

// IDToString returns the identity marker for a build.
func IDToString(id string) string {
	return "danger-id-" + id + ";"
}

// ResultsSection renders violations as a titled Markdown section of
// blockquotes. It returns "" when no violation has a message.
func ResultsSection(name, emoji string, violations []danger.Violation) string {
	quotes := make([]string, 0, len(violations))
	for _, v := range violations {
		if v.Message == "" {
			continue
		}
		quotes = append(quotes, blockquote(v.Message))
	}
	if len(quotes) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n## ")
	sb.WriteString(emoji)
	sb.WriteString(" ")
	sb.WriteString(name)
	sb.WriteString("\n")
	sb.WriteString(strings.Join(quotes, "\n\n"))
	sb.WriteString("\n")
	return sb.String()
}

// blockquote quotes every line of msg.
func blockquote(msg string) string {
	msg = codeTags.Replace(msg)
	return "> " + strings.ReplaceAll(msg, "\n", "\n> ")
}

// Template builds the comment body for dangerID from results.
func Template(dangerID string, results danger.Results) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(ResultsSection("Fails", "🚫", results.Fails))
	sb.WriteString("\n")
	sb.WriteString(ResultsSection("Warnings", "⚠️", results.Warnings))
	sb.WriteString("\n")
	sb.WriteString(ResultsSection("Messages", "📖", results.Messages))
	sb.WriteString("\n\n---\n\n")
	sb.WriteString(strings.Join(results.Markdowns, "\n\n"))
	sb.WriteString("\n\n")
	sb.WriteString(SignaturePostfix)
	sb.WriteString("\n\n[](http://")
	sb.WriteString(IDToString(dangerID))
	sb.WriteString(")\n")
	return sb.String()
}
