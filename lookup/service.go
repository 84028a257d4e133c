package lookup

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Service runs submissions of a Form against a Fetcher.
type Service struct {
	Fetcher Fetcher
	Timeout time.Duration
}

// NewService returns a Service using f. A non-positive timeout disables
// the per request deadline.
func NewService(f Fetcher, timeout time.Duration) *Service {
	return &Service{Fetcher: f, Timeout: timeout}
}

// Submit validates query on form. When a request is needed it returns a
// function that performs it and applies the result; otherwise nil.
func (s *Service) Submit(form *Form, query string) func(ctx context.Context) {
	t, ok := form.Submit(query)
	if !ok {
		if query != "" {
			log.WithField("query", query).Debug("rejected video url")
		}
		return nil
	}
	return func(ctx context.Context) {
		s.complete(ctx, form, t)
	}
}

// Lookup submits query and waits for the request to finish.
func (s *Service) Lookup(ctx context.Context, form *Form, query string) Snapshot {
	if run := s.Submit(form, query); run != nil {
		run(ctx)
	}
	return form.Snapshot()
}

// Fetch requests the video id under the configured timeout.
func (s *Service) Fetch(ctx context.Context, id VideoID) Result {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	v, err := s.Fetcher.FetchVideo(ctx, id)
	return Resolve(v, err)
}

func (s *Service) complete(ctx context.Context, form *Form, t Ticket) {
	res := s.Fetch(ctx, t.ID)
	if res.Outcome == OutcomeFailed {
		log.WithField("id", t.ID).Errorf("error fetching video details: %s", res.Err)
	}

	if !form.Complete(t, res) {
		log.WithField("id", t.ID).Debug("discarded superseded lookup")
	}
}
