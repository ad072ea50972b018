package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/dangermd/internal/danger"
)

// Writer writes a comment in a specific format.
type Writer interface {
	Write(w io.Writer, id string, results danger.Results) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "markdown", "md":
		return &MarkdownWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport writes the comment to outPath, or to stdout when outPath is empty.
func WriteReport(stdout io.Writer, id string, results danger.Results, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = stdout
	}

	return writer.Write(w, id, results)
}
