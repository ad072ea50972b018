package danger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load decodes a Danger results document.
func Load(r io.Reader) (Results, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Results{}, fmt.Errorf("reading results: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Results{}, fmt.Errorf("reading results: empty input")
	}

	var raw struct {
		Fails     []Violation       `json:"fails"`
		Warnings  []Violation       `json:"warnings"`
		Messages  []Violation       `json:"messages"`
		Markdowns []json.RawMessage `json:"markdowns"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Results{}, fmt.Errorf("parsing results: %w", err)
	}

	res := Results{
		Fails:    raw.Fails,
		Warnings: raw.Warnings,
		Messages: raw.Messages,
	}
	for i, m := range raw.Markdowns {
		text, err := decodeMarkdown(m)
		if err != nil {
			return Results{}, fmt.Errorf("parsing markdowns[%d]: %w", i, err)
		}
		res.Markdowns = append(res.Markdowns, text)
	}
	return res, nil
}

// LoadFile reads results from path. A path of "-" reads stdin.
func LoadFile(path string) (Results, error) {
	if path == "-" {
		return Load(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return Results{}, fmt.Errorf("opening results file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// decodeMarkdown accepts either a bare string or an object with a message
// field. Newer Danger versions emit the latter.
func decodeMarkdown(m json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(m, &s); err == nil {
		return s, nil
	}
	var v Violation
	if err := json.Unmarshal(m, &v); err != nil {
		return "", fmt.Errorf("expected string or object with message: %w", err)
	}
	return v.Message, nil
}
