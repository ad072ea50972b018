package danger

import "testing"

func TestCounts(t *testing.T) {
	r := Results{
		Fails:     []Violation{{Message: "a"}, {Message: ""}},
		Warnings:  []Violation{{Message: "b"}, {Message: "c"}},
		Messages:  nil,
		Markdowns: []string{"", "md"},
	}
	got := r.Counts()
	want := Counts{Fails: 1, Warnings: 2, Messages: 0, Markdowns: 1}
	if got != want {
		t.Errorf("Counts() = %+v, want %+v", got, want)
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Results
		want bool
	}{
		{"zero value", Results{}, true},
		{"only empty messages", Results{Fails: []Violation{{}}, Markdowns: []string{""}}, true},
		{"one warning", Results{Warnings: []Violation{{Message: "w"}}}, false},
		{"one markdown", Results{Markdowns: []string{"Coverage: 80%"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMeetsThreshold(t *testing.T) {
	fails := Results{Fails: []Violation{{Message: "Missing tests"}}}
	warns := Results{Warnings: []Violation{{Message: "Big PR"}}}
	msgs := Results{Messages: []Violation{{Message: "Thanks"}}}

	tests := []struct {
		name   string
		r      Results
		failOn string
		want   bool
	}{
		{"fails on fails", fails, FailOnFails, true},
		{"warnings on fails", warns, FailOnFails, false},
		{"fails on warnings", fails, FailOnWarnings, true},
		{"warnings on warnings", warns, FailOnWarnings, true},
		{"messages never trip", msgs, FailOnWarnings, false},
		{"none", fails, FailOnNone, false},
		{"empty threshold", fails, "", false},
		{"empty fail message", Results{Fails: []Violation{{}}}, FailOnFails, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeetsThreshold(tt.r, tt.failOn); got != tt.want {
				t.Errorf("MeetsThreshold(%q) = %v, want %v", tt.failOn, got, tt.want)
			}
		})
	}
}

func TestValidThreshold(t *testing.T) {
	for _, s := range []string{"none", "fails", "warnings"} {
		if !ValidThreshold(s) {
			t.Errorf("ValidThreshold(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "high", "Fails"} {
		if ValidThreshold(s) {
			t.Errorf("ValidThreshold(%q) = true, want false", s)
		}
	}
}
