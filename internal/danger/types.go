package danger

// Violation is a single reported issue with a Markdown body.
type Violation struct {
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Icon    string `json:"icon,omitempty"`
}

// Results is the categorized output of a review run.
type Results struct {
	Fails     []Violation `json:"fails"`
	Warnings  []Violation `json:"warnings"`
	Messages  []Violation `json:"messages"`
	Markdowns []string    `json:"markdowns"`
}

// Counts holds the number of non-empty entries per category.
type Counts struct {
	Fails     int `json:"fails"`
	Warnings  int `json:"warnings"`
	Messages  int `json:"messages"`
	Markdowns int `json:"markdowns"`
}

// Counts returns the number of entries in each category that carry text.
func (r Results) Counts() Counts {
	c := Counts{
		Fails:    countMessages(r.Fails),
		Warnings: countMessages(r.Warnings),
		Messages: countMessages(r.Messages),
	}
	for _, md := range r.Markdowns {
		if md != "" {
			c.Markdowns++
		}
	}
	return c
}

// IsEmpty reports whether the run has nothing to show.
func (r Results) IsEmpty() bool {
	c := r.Counts()
	return c.Fails == 0 && c.Warnings == 0 && c.Messages == 0 && c.Markdowns == 0
}

// Threshold values accepted by MeetsThreshold.
const (
	FailOnNone     = "none"
	FailOnFails    = "fails"
	FailOnWarnings = "warnings"
)

// ValidThreshold reports whether s is a known fail-on value.
func ValidThreshold(s string) bool {
	switch s {
	case FailOnNone, FailOnFails, FailOnWarnings:
		return true
	default:
		return false
	}
}

// MeetsThreshold returns true if the results should fail the build.
// "warnings" also trips on fails.
func MeetsThreshold(r Results, failOn string) bool {
	c := r.Counts()
	switch failOn {
	case FailOnFails:
		return c.Fails > 0
	case FailOnWarnings:
		return c.Fails > 0 || c.Warnings > 0
	default:
		return false
	}
}

func countMessages(vs []Violation) int {
	n := 0
	for _, v := range vs {
		if v.Message != "" {
			n++
		}
	}
	return n
}
