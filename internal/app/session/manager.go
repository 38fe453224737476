package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/worklab-studio/Nextyoulinkedin/internal/app/prompts"
	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
	"github.com/worklab-studio/Nextyoulinkedin/internal/observability"
)

// Manager owns the live sessions and drives the submit/response cycle:
// compose the instruction from the current fragments, call the generation
// client, and fold the outcome back into the conversation.
type Manager struct {
	fragments *prompts.Store
	generator domain.GenerationClient

	mu       sync.RWMutex
	sessions map[domain.SessionID]*Session
}

func NewManager(fragments *prompts.Store, generator domain.GenerationClient) *Manager {
	return &Manager{
		fragments: fragments,
		generator: generator,
		sessions:  make(map[domain.SessionID]*Session),
	}
}

// Create starts a new session for the given persona.
func (m *Manager) Create(ctx context.Context, personaID domain.PersonaID) (View, error) {
	persona, ok := domain.PersonaByID(personaID)
	if !ok {
		return View{}, fmt.Errorf("unknown persona %q", personaID)
	}

	sess := newSession(domain.SessionID(uuid.NewString()), persona)

	m.mu.Lock()
	m.sessions[sess.id] = sess
	m.mu.Unlock()

	observability.LoggerFromContext(ctx).Info().
		Str("session_id", string(sess.id)).
		Str("persona", string(persona.ID)).
		Msg("session started")

	return sess.View(), nil
}

// Get returns a snapshot of a session.
func (m *Manager) Get(id domain.SessionID) (View, error) {
	sess, err := m.lookup(id)
	if err != nil {
		return View{}, err
	}
	return sess.View(), nil
}

// SetPersona switches a session's persona for subsequent submissions.
func (m *Manager) SetPersona(id domain.SessionID, personaID domain.PersonaID) error {
	persona, ok := domain.PersonaByID(personaID)
	if !ok {
		return fmt.Errorf("unknown persona %q", personaID)
	}
	sess, err := m.lookup(id)
	if err != nil {
		return err
	}
	sess.SetPersona(persona)
	return nil
}

// End discards a session and its conversation. Ending an unknown session is
// a no-op.
func (m *Manager) End(id domain.SessionID) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// SubmitOutput carries the two turns a submission produced.
type SubmitOutput struct {
	UserTurn      domain.Turn
	AssistantTurn domain.Turn
	// Failed is set when the assistant turn carries an error message
	// instead of generated content.
	Failed bool
}

// Submit appends a user turn, composes the instruction for the session's
// current persona, and calls the generation client. Adapter failures are
// converted into a visible assistant turn; the session always returns to
// Idle and the error is never propagated as a crash. Submitting while a
// request is in flight returns ErrRequestInFlight without side effects.
func (m *Manager) Submit(ctx context.Context, id domain.SessionID, text string) (*SubmitOutput, error) {
	sess, err := m.lookup(id)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)

	persona, turns, err := sess.begin(text)
	if err != nil {
		return nil, err
	}

	log := observability.LoggerFromContext(ctx).With().
		Str("session_id", string(id)).
		Str("persona", string(persona.ID)).
		Logger()
	log.Info().Int("turns", len(turns)).Msg("submitting generation request")

	// Recomposed on every request so fragment edits apply immediately.
	instruction := prompts.Compose(m.fragments.Snapshot(), persona)

	reply, genErr := m.generator.Generate(ctx, instruction, turns)

	out := &SubmitOutput{UserTurn: turns[len(turns)-1]}
	if genErr != nil {
		out.Failed = true
		msg := genErr.Error()
		if gerr, ok := domain.AsGenerationError(genErr); ok {
			log.Warn().Str("kind", string(gerr.Kind)).Str("error", msg).Msg("generation failed")
		} else {
			log.Warn().Str("error", msg).Msg("generation failed")
		}
		out.AssistantTurn = sess.finish("Sorry, there was an error: " + msg)
		return out, nil
	}

	out.AssistantTurn = sess.finish(reply)
	log.Info().Int("reply_chars", len(reply)).Msg("generation completed")
	return out, nil
}

func (m *Manager) lookup(id domain.SessionID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}
