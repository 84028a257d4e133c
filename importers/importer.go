// Package importers fetches video metadata from remote services.
package importers

import (
	"errors"

	"github.com/wybiral/ytdetails/lookup"
)

var (
	// ErrVideoNotFound is returned when the service knows no such video.
	ErrVideoNotFound = lookup.ErrNotFound

	// ErrMalformedResponse is returned when an item lacks the fields we render.
	ErrMalformedResponse = errors.New("error: malformed video metadata")
)

// ThumbnailPreference is the order in which thumbnail variants are tried.
var ThumbnailPreference = []string{"medium", "high", "standard", "default", "maxres"}
