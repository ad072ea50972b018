package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/dangermd/internal/danger"
	"github.com/dshills/dangermd/internal/template"
)

// Envelope is the JSON form of a rendered comment.
type Envelope struct {
	ID     string        `json:"id"`
	Marker string        `json:"marker"`
	Counts danger.Counts `json:"counts"`
	Body   string        `json:"body"`
}

// JSONWriter outputs the rendered body together with its identity marker.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, id string, results danger.Results) error {
	env := Envelope{
		ID:     id,
		Marker: template.IDToString(id),
		Counts: results.Counts(),
		Body:   template.Template(id, results),
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
