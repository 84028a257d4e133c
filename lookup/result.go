package lookup

import (
	"context"
	"errors"

	"github.com/wybiral/ytdetails/media"
)

// ErrNotFound is returned by a Fetcher when the API answered without items.
var ErrNotFound = errors.New("video not found")

// Fetcher retrieves metadata for a single video.
type Fetcher interface {
	FetchVideo(ctx context.Context, id VideoID) (media.Video, error)
}

// Outcome classifies a completed request.
type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeEmpty
	OutcomeFailed
)

// Result is the outcome of a metadata request as consumed by Form.
type Result struct {
	Outcome Outcome
	Video   media.Video
	Err     error
}

// Resolve maps the return values of a Fetcher to a Result. Any error other
// than ErrNotFound is a failure.
func Resolve(v media.Video, err error) Result {
	switch {
	case err == nil:
		return Result{Outcome: OutcomeFound, Video: v}
	case errors.Is(err, ErrNotFound):
		return Result{Outcome: OutcomeEmpty, Err: err}
	default:
		return Result{Outcome: OutcomeFailed, Err: err}
	}
}
