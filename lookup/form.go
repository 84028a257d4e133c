// Package lookup turns a user supplied URL into video details. It holds the
// identifier extraction rule and the per-session form state machine.
package lookup

import (
	"sync"

	"github.com/wybiral/ytdetails/media"
)

// Ticket identifies one accepted submission. Only the ticket of the latest
// submission may complete a Form.
type Ticket struct {
	Seq uint64
	ID  VideoID
}

// Snapshot is a consistent copy of a Form for rendering.
type Snapshot struct {
	Query   string
	State   State
	Invalid bool
	Details *media.Video
	Notice  *Notice
}

// Loading reports whether a request is in flight.
func (s Snapshot) Loading() bool {
	return s.State == StateLoading
}

// Form holds the state of one lookup form. The zero value is an idle form.
type Form struct {
	mu sync.Mutex

	query   string
	state   State
	invalid bool
	details *media.Video
	notice  *Notice
	seq     uint64
}

// NewForm returns an idle Form.
func NewForm() *Form {
	return &Form{state: StateIdle}
}

// Submit validates query and, when it holds an identifier, moves the form
// to Loading and returns the ticket for the request. An empty query is
// ignored and leaves the form unchanged. Any other submission supersedes a
// request still in flight.
func (f *Form) Submit(query string) (Ticket, bool) {
	if query == "" {
		return Ticket{}, false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.query = query
	f.seq++
	f.state = StateValidating

	id, ok := ExtractID(query)
	if !ok {
		f.state = StateInvalid
		f.invalid = true
		f.notice = invalidNotice()
		return Ticket{}, false
	}

	f.invalid = false
	f.notice = nil
	f.state = StateLoading
	return Ticket{Seq: f.seq, ID: id}, true
}

// Complete applies the result of the request identified by t. It returns
// false and changes nothing when t has been superseded.
func (f *Form) Complete(t Ticket, res Result) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t.Seq != f.seq || f.state != StateLoading {
		return false
	}

	switch res.Outcome {
	case OutcomeFound:
		v := res.Video
		f.details = &v
		f.state = StateReady
	case OutcomeEmpty:
		f.details = nil
		f.notice = emptyNotice()
		f.state = StateEmpty
	default:
		f.notice = failureNotice()
		f.state = StateError
	}
	return true
}

// Dismiss clears the current notice.
func (f *Form) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notice = nil
}

// Snapshot returns a copy of the form state.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// Render returns a copy of the form state for display and clears the
// notice, so every notice is shown once.
func (f *Form) Render() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := f.snapshotLocked()
	f.notice = nil
	return s
}

func (f *Form) snapshotLocked() Snapshot {
	s := Snapshot{
		Query:   f.query,
		State:   f.state,
		Invalid: f.invalid,
	}
	if s.State == "" {
		s.State = StateIdle
	}
	if f.details != nil {
		d := *f.details
		s.Details = &d
	}
	if f.notice != nil {
		n := *f.notice
		s.Notice = &n
	}
	return s
}
