package output

import (
	"fmt"
	"io"

	"github.com/dshills/dangermd/internal/danger"
	"github.com/dshills/dangermd/internal/template"
)

// MarkdownWriter outputs the pull-request comment body.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, id string, results danger.Results) error {
	if _, err := io.WriteString(w, template.Template(id, results)); err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}
