package lookup

import "regexp"

// VideoID is the 11 character token YouTube uses to address a video.
type VideoID string

// idPattern matches watch?v= URLs, youtu.be short links and /v/ or /e/
// embed paths. The first group holds the identifier.
var idPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e)/|.*[?&]v=)|youtu\.be/)([^"&?/ ]{11})`)

var barePattern = regexp.MustCompile(`^[^"&?/ ]{11}$`)

// ExtractID returns the video identifier found in s. The input is matched
// as is: no trimming or case folding.
func ExtractID(s string) (VideoID, bool) {
	if s == "" {
		return "", false
	}
	m := idPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return VideoID(m[1]), true
}

// ValidID reports whether s is usable as a bare identifier.
func ValidID(s string) bool {
	return barePattern.MatchString(s)
}
