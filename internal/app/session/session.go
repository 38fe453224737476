package session

import (
	"errors"
	"sync"

	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
)

// State is the submit/response phase of a session.
type State string

const (
	// StateIdle: no outstanding generation request; submit is allowed.
	StateIdle State = "idle"
	// StateAwaiting: one request in flight; submit is rejected.
	StateAwaiting State = "awaiting"
)

var (
	// ErrRequestInFlight guards the at-most-one-outstanding-request rule.
	// A rejected submit appends nothing and issues no generation call.
	ErrRequestInFlight = errors.New("a generation request is already in flight")

	// ErrEmptyMessage rejects blank user input.
	ErrEmptyMessage = errors.New("message text is required")

	// ErrSessionNotFound is returned for unknown session IDs.
	ErrSessionNotFound = errors.New("session not found")
)

// Session owns one transient conversation: the ordered turn history, the
// currently selected persona, and the Idle/Awaiting state machine that
// serializes generation requests. The conversation is discarded with the
// session; nothing persists it.
type Session struct {
	id domain.SessionID

	mu      sync.Mutex
	persona domain.Persona
	turns   []domain.Turn
	state   State
}

func newSession(id domain.SessionID, persona domain.Persona) *Session {
	return &Session{
		id:      id,
		persona: persona,
		state:   StateIdle,
	}
}

// SetPersona switches the authorial identity. Allowed at any time; it only
// affects the instruction composed for the next submission.
func (s *Session) SetPersona(p domain.Persona) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persona = p
}

// View is an immutable copy of session state for callers to render.
type View struct {
	ID      domain.SessionID
	Persona domain.Persona
	State   State
	Turns   []domain.Turn
}

// View snapshots the session under its lock.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := make([]domain.Turn, len(s.turns))
	copy(turns, s.turns)
	return View{
		ID:      s.id,
		Persona: s.persona,
		State:   s.state,
		Turns:   turns,
	}
}

// begin validates a submission, appends the user turn, and moves the
// session to Awaiting. It returns the persona to compose with and a copy of
// the full turn history to send.
func (s *Session) begin(text string) (domain.Persona, []domain.Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return domain.Persona{}, nil, ErrRequestInFlight
	}
	if text == "" {
		return domain.Persona{}, nil, ErrEmptyMessage
	}

	s.turns = append(s.turns, domain.Turn{Speaker: domain.RoleUser, Text: text})
	s.state = StateAwaiting

	turns := make([]domain.Turn, len(s.turns))
	copy(turns, s.turns)
	return s.persona, turns, nil
}

// finish appends the assistant turn (reply or error text) and returns the
// session to Idle. Every begin is paired with exactly one finish.
func (s *Session) finish(text string) domain.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turn := domain.Turn{Speaker: domain.RoleAssistant, Text: text}
	s.turns = append(s.turns, turn)
	s.state = StateIdle
	return turn
}
