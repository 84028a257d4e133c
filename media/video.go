package media

import "time"

// Video represents the metadata shown for a single YouTube video.
type Video struct {
	ID           string
	Title        string
	Description  string
	ThumbnailURL string
	// PublishedAt is the ISO-8601 timestamp as returned by the API.
	PublishedAt string
}

// Published returns the publish date formatted for the given
// Accept-Language header value, in location loc (nil means UTC).
func (v *Video) Published(acceptLanguage string, loc *time.Location) string {
	return FormatDate(v.PublishedAt, acceptLanguage, loc)
}
