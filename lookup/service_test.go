package lookup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wybiral/ytdetails/media"
)

type stubFetcher struct {
	video    media.Video
	err      error
	calls    int
	lastID   VideoID
	deadline bool
}

func (s *stubFetcher) FetchVideo(ctx context.Context, id VideoID) (media.Video, error) {
	s.calls++
	s.lastID = id
	_, s.deadline = ctx.Deadline()
	return s.video, s.err
}

func TestServiceLookupReady(t *testing.T) {
	fetcher := &stubFetcher{video: media.Video{
		ID:          "dQw4w9WgXcQ",
		Title:       "Test Video",
		Description: "A description",
		PublishedAt: "2009-10-25T06:57:33Z",
	}}
	svc := NewService(fetcher, time.Second)

	s := svc.Lookup(context.Background(), NewForm(), testURL)

	if fetcher.lastID != "dQw4w9WgXcQ" {
		t.Errorf("expected fetch for dQw4w9WgXcQ, got %s", fetcher.lastID)
	}
	if !fetcher.deadline {
		t.Error("expected request context to carry a deadline")
	}
	if s.State != StateReady || s.Details == nil {
		t.Fatalf("expected ready state, got %+v", s)
	}
	if s.Details.Title != "Test Video" || s.Details.Description != "A description" {
		t.Errorf("unexpected details: %+v", s.Details)
	}
}

func TestServiceNoFetchWhenInvalid(t *testing.T) {
	fetcher := &stubFetcher{}
	svc := NewService(fetcher, 0)

	for _, query := range []string{"", "https://example.com/watch?x=1", "dQw4w9WgXcQ"} {
		if run := svc.Submit(NewForm(), query); run != nil {
			t.Errorf("expected no request for %q", query)
		}
	}
	if fetcher.calls != 0 {
		t.Errorf("expected no fetch, got %d calls", fetcher.calls)
	}
}

func TestServiceLookupFailures(t *testing.T) {
	tests := []struct {
		err      error
		expected State
	}{
		{ErrNotFound, StateEmpty},
		{errors.New("boom"), StateError},
		{context.DeadlineExceeded, StateError},
	}

	for _, test := range tests {
		svc := NewService(&stubFetcher{err: test.err}, 0)
		s := svc.Lookup(context.Background(), NewForm(), testURL)
		if s.State != test.expected {
			t.Errorf("error %v: expected %s, got %s", test.err, test.expected, s.State)
		}
	}
}

func TestServiceFetchDeadline(t *testing.T) {
	tests := []struct {
		timeout  time.Duration
		deadline bool
	}{
		{time.Second, true},
		{0, false},
	}

	for _, test := range tests {
		fetcher := &stubFetcher{video: media.Video{Title: "Test Video"}}
		res := NewService(fetcher, test.timeout).Fetch(context.Background(), "dQw4w9WgXcQ")
		if res.Outcome != OutcomeFound || res.Video.Title != "Test Video" {
			t.Errorf("timeout %v: unexpected result %+v", test.timeout, res)
		}
		if fetcher.deadline != test.deadline {
			t.Errorf("timeout %v: expected deadline %v, got %v", test.timeout, test.deadline, fetcher.deadline)
		}
	}
}

func TestResolve(t *testing.T) {
	if r := Resolve(media.Video{Title: "x"}, nil); r.Outcome != OutcomeFound || r.Video.Title != "x" {
		t.Errorf("unexpected result %+v", r)
	}
	wrapped := errors.Join(errors.New("videos.list"), ErrNotFound)
	if r := Resolve(media.Video{}, wrapped); r.Outcome != OutcomeEmpty {
		t.Errorf("expected wrapped not found to be empty, got %+v", r)
	}
	if r := Resolve(media.Video{}, errors.New("x")); r.Outcome != OutcomeFailed {
		t.Errorf("expected failure, got %+v", r)
	}
}
