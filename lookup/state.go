package lookup

// State is the position of a Form in the lookup state machine.
type State string

const (
	// StateIdle means nothing has been submitted yet
	StateIdle State = "Idle"

	// StateValidating means a submission is being checked
	StateValidating State = "Validating"

	// StateInvalid means the query did not contain a video identifier
	StateInvalid State = "Invalid"

	// StateLoading means the metadata request is in flight
	StateLoading State = "Loading"

	// StateEmpty means the request succeeded without any item
	StateEmpty State = "Empty"

	// StateError means the request failed
	StateError State = "Error"

	// StateReady means details for the video are available
	StateReady State = "Ready"
)

// String returns the string representation of State
func (s State) String() string {
	return string(s)
}

// IsTerminal returns true once a submission has been fully handled
func (s State) IsTerminal() bool {
	switch s {
	case StateInvalid, StateEmpty, StateError, StateReady:
		return true
	}
	return false
}

// Level is the severity of a Notice.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// NoticeDurationSeconds is how long a notice stays visible unless dismissed.
const NoticeDurationSeconds = 5

// Notice is a transient, dismissible message for the user.
type Notice struct {
	Title       string
	Description string
	Level       Level
	Seconds     int
	Closable    bool
}

func errorNotice(title, description string) *Notice {
	return &Notice{
		Title:       title,
		Description: description,
		Level:       LevelError,
		Seconds:     NoticeDurationSeconds,
		Closable:    true,
	}
}

func invalidNotice() *Notice {
	return errorNotice("Invalid YouTube video URL.", "Please enter a valid URL.")
}

func emptyNotice() *Notice { return errorNotice("Video not found", "") }

func failureNotice() *Notice { return errorNotice("An error occurred", "") }
