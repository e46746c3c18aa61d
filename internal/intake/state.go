package intake

import (
	"strings"
	"time"
)

// State is the intake step a session is waiting on.
type State int

const (
	AwaitingDate State = iota
	AwaitingTime
	AwaitingLocation
	AwaitingDescription
	Completed
)

func (s State) String() string {
	switch s {
	case AwaitingDate:
		return "awaiting_date"
	case AwaitingTime:
		return "awaiting_time"
	case AwaitingLocation:
		return "awaiting_location"
	case AwaitingDescription:
		return "awaiting_description"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

type Answers struct {
	Date        string
	Time        string
	Location    string
	Description string
}

// Session is one submitter's progress through the intake questions.
type Session struct {
	ID          string
	SubmitterID int64
	State       State
	Answers     Answers
	StartedAt   time.Time
}

// Step records text as the answer to the current question and moves to the
// next state. Blank text leaves the session unchanged. Content is not
// otherwise checked.
func Step(s Session, text string) Session {
	if strings.TrimSpace(text) == "" {
		return s
	}
	switch s.State {
	case AwaitingDate:
		s.Answers.Date = text
		s.State = AwaitingTime
	case AwaitingTime:
		s.Answers.Time = text
		s.State = AwaitingLocation
	case AwaitingLocation:
		s.Answers.Location = text
		s.State = AwaitingDescription
	case AwaitingDescription:
		s.Answers.Description = text
		s.State = Completed
	}
	return s
}

// Prompt returns the question asked while in state s.
func Prompt(s State) string {
	switch s {
	case AwaitingDate:
		return "Введіть дату виконання робіт (наприклад: 07.07):"
	case AwaitingTime:
		return "Введіть час виконання (наприклад: 08:00-18:00):"
	case AwaitingLocation:
		return "Вкажіть місце виконання робіт:"
	case AwaitingDescription:
		return "Опишіть коротко суть виконаних робіт:"
	default:
		return ""
	}
}
