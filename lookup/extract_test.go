package lookup

import (
	"fmt"
	"testing"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		input string
		id    VideoID
		ok    bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"youtu.be/dQw4w9WgXcQ?si=abc", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/e/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/user/someone/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"", "", false},
		{"not a url", "", false},
		{"https://vimeo.com/123456789", "", false},
		{"https://www.youtube.com/watch?v=short", "", false},
		{"https://youtu.be/", "", false},
		{"HTTPS://WWW.YOUTUBE.COM/WATCH?V=dQw4w9WgXcQ", "", false},
	}

	for _, test := range tests {
		id, ok := ExtractID(test.input)
		if ok != test.ok || id != test.id {
			t.Errorf("ExtractID(%q) = (%q, %v), expected (%q, %v)", test.input, id, ok, test.id, test.ok)
		}
	}
}

func TestExtractIDShapes(t *testing.T) {
	ids := []string{"dQw4w9WgXcQ", "a_b-c1D2e3F", "00000000000"}
	shapes := []string{
		"https://www.youtube.com/watch?v=%s",
		"https://www.youtube.com/v/%s",
		"https://www.youtube.com/e/%s",
		"https://youtu.be/%s",
	}

	for _, id := range ids {
		for _, shape := range shapes {
			input := fmt.Sprintf(shape, id)
			got, ok := ExtractID(input)
			if !ok || string(got) != id {
				t.Errorf("ExtractID(%q) = (%q, %v), expected %q", input, got, ok, id)
			}
		}
	}
}

func TestValidID(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"dQw4w9WgXcQ", true},
		{"dQw4w9WgXc", false},
		{"dQw4w9WgXcQQ", false},
		{"dQw4w9W/XcQ", false},
		{"", false},
	}

	for _, test := range tests {
		if got := ValidID(test.input); got != test.expected {
			t.Errorf("ValidID(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}
