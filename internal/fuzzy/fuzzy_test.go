//nolint:testpackage // using package name 'fuzzy' to access unexported fields for testing
package fuzzy

import (
	"testing"
)

func TestMatcher_FindBest(t *testing.T) {
	matcher := NewMatcher(2)

	tests := []struct {
		name       string
		input      string
		candidates []string
		expected   string
	}{
		{
			name:       "exact match excluded",
			input:      "verbose",
			candidates: []string{"verbose", "version"},
			expected:   "", // Exact matches are not suggestions
		},
		{
			name:       "dropped letter",
			input:      "fourh",
			candidates: []string{"3", "fourth"},
			expected:   "fourth",
		},
		{
			name:       "closest wins",
			input:      "outpt",
			candidates: []string{"input", "output"},
			expected:   "output",
		},
		{
			name:       "no good match",
			input:      "xyz",
			candidates: []string{"fourth", "verbose"},
			expected:   "",
		},
		{
			name:       "single character input",
			input:      "9",
			candidates: []string{"3", "4"},
			expected:   "", // Too short
		},
		{
			name:       "case insensitive",
			input:      "FOURH",
			candidates: []string{"fourth"},
			expected:   "fourth",
		},
		{
			name:       "tie keeps declaration order",
			input:      "ab",
			candidates: []string{"abc", "abd"},
			expected:   "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := matcher.FindBest(tt.input, tt.candidates)
			if result != tt.expected {
				t.Errorf("FindBest(%q, %v) = %q, want %q", tt.input, tt.candidates, result, tt.expected)
			}
		})
	}
}

func TestMatcher_FindMatchesSorted(t *testing.T) {
	matcher := NewMatcher(2)

	matches := matcher.FindMatches("colr", []string{"colour", "color", "cold", "xyzzy"})
	if len(matches) != 3 {
		t.Fatalf("Expected 3 matches, got %d: %v", len(matches), matches)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Distance > matches[i].Distance {
			t.Errorf("Matches not sorted by distance: %v", matches)
		}
	}
	for _, match := range matches {
		if match.Distance > matcher.maxDistance {
			t.Errorf("Match distance %d exceeds max %d", match.Distance, matcher.maxDistance)
		}
	}
}

func TestMatcher_Distance(t *testing.T) {
	matcher := NewMatcher(10) // High max to test actual distances

	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "ab", 1},
		{"abc", "axc", 1},
		{"fourth", "fourh", 1},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := matcher.distance(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("distance(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestMatcher_EarlyTermination(t *testing.T) {
	matcher := NewMatcher(2)

	if d := matcher.distance("short", "verylongstring"); d != matcher.maxDistance+1 {
		t.Errorf("Expected early termination distance %d, got %d", matcher.maxDistance+1, d)
	}
	if d := matcher.distance("abcdef", "uvwxyz"); d != matcher.maxDistance+1 {
		t.Errorf("Expected row-minimum termination distance %d, got %d", matcher.maxDistance+1, d)
	}
}

func TestConvenienceFunctions(t *testing.T) {
	flags := []string{"verbose", "version", "output", "4"}

	if result := FindBestFlag("outpt", flags, 2); result != "output" {
		t.Errorf("FindBestFlag(outpt) = %q, want output", result)
	}

	suggestions := FindSuggestions("verison", flags, 2, 1)
	if len(suggestions) != 1 {
		t.Fatalf("Expected 1 suggestion, got %v", suggestions)
	}
	if suggestions[0] != "version" {
		t.Errorf("Expected version, got %q", suggestions[0])
	}

	if s := FindSuggestions("zzzzzz", flags, 2, 3); len(s) != 0 {
		t.Errorf("Expected no suggestions, got %v", s)
	}
}
