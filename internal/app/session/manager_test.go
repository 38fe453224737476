package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklab-studio/Nextyoulinkedin/internal/app/prompts"
	"github.com/worklab-studio/Nextyoulinkedin/internal/app/session"
	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
)

// stubClient records calls and replies with a fixed outcome.
type stubClient struct {
	mu           sync.Mutex
	instructions []string
	turnCounts   []int
	reply        string
	err          error
}

func (c *stubClient) Generate(_ context.Context, instruction string, turns []domain.Turn) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instructions = append(c.instructions, instruction)
	c.turnCounts = append(c.turnCounts, len(turns))
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

func (c *stubClient) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.instructions)
}

// blockingClient holds a request open until released, to exercise the
// in-flight guard.
type blockingClient struct {
	started chan struct{}
	release chan struct{}
}

func (c *blockingClient) Generate(_ context.Context, _ string, _ []domain.Turn) (string, error) {
	c.started <- struct{}{}
	<-c.release
	return "done", nil
}

func newManager(t *testing.T, client domain.GenerationClient) (*session.Manager, session.View) {
	t.Helper()
	m := session.NewManager(prompts.NewStore(), client)
	view, err := m.Create(context.Background(), domain.PersonaSimmi)
	require.NoError(t, err)
	return m, view
}

func TestSubmitAppendsBothTurns(t *testing.T) {
	client := &stubClient{reply: "Here is your post."}
	m, view := newManager(t, client)

	out, err := m.Submit(context.Background(), view.ID, "Write about career pivots")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleUser, out.UserTurn.Speaker)
	assert.Equal(t, "Write about career pivots", out.UserTurn.Text)
	assert.Equal(t, domain.RoleAssistant, out.AssistantTurn.Speaker)
	assert.Equal(t, "Here is your post.", out.AssistantTurn.Text)
	assert.False(t, out.Failed)

	after, err := m.Get(view.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StateIdle, after.State)
	require.Len(t, after.Turns, 2)

	// The instruction was composed for the session persona.
	require.Equal(t, 1, client.calls())
	assert.Contains(t, client.instructions[0], "WRITING AS: Simmi Sen Roy")
	assert.Equal(t, 1, client.turnCounts[0])
}

func TestSubmitRejectsEmptyText(t *testing.T) {
	client := &stubClient{reply: "unused"}
	m, view := newManager(t, client)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := m.Submit(context.Background(), view.ID, text)
		assert.ErrorIs(t, err, session.ErrEmptyMessage)
	}

	after, err := m.Get(view.ID)
	require.NoError(t, err)
	assert.Empty(t, after.Turns)
	assert.Zero(t, client.calls())
}

func TestSubmitWhileAwaitingIsRejected(t *testing.T) {
	client := &blockingClient{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	m, view := newManager(t, client)

	done := make(chan *session.SubmitOutput, 1)
	go func() {
		out, err := m.Submit(context.Background(), view.ID, "first")
		if err == nil {
			done <- out
		} else {
			done <- nil
		}
	}()

	// Wait until the first request is in flight.
	select {
	case <-client.started:
	case <-time.After(5 * time.Second):
		t.Fatal("first submission never reached the client")
	}

	_, err := m.Submit(context.Background(), view.ID, "second")
	assert.ErrorIs(t, err, session.ErrRequestInFlight)

	close(client.release)
	out := <-done
	require.NotNil(t, out)

	after, err := m.Get(view.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StateIdle, after.State)
	// Only the first submission left turns behind.
	require.Len(t, after.Turns, 2)
	assert.Equal(t, "first", after.Turns[0].Text)
}

func TestGenerationFailureBecomesVisibleTurn(t *testing.T) {
	kinds := []domain.GenerationErrorKind{
		domain.GenerationConfiguration,
		domain.GenerationUpstream,
		domain.GenerationEmpty,
		domain.GenerationTransport,
	}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			client := &stubClient{
				err: domain.NewGenerationError(kind, "rate limited", nil),
			}
			m, view := newManager(t, client)

			out, err := m.Submit(context.Background(), view.ID, "hello")
			require.NoError(t, err, "failures surface as turns, not errors")
			assert.True(t, out.Failed)
			assert.Contains(t, out.AssistantTurn.Text, "rate limited")
			assert.Contains(t, out.AssistantTurn.Text, "Sorry, there was an error")

			after, getErr := m.Get(view.ID)
			require.NoError(t, getErr)
			assert.Equal(t, session.StateIdle, after.State)
			require.Len(t, after.Turns, 2, "exactly one error turn per failure")
		})
	}
}

func TestSetPersonaAffectsNextSubmission(t *testing.T) {
	client := &stubClient{reply: "ok"}
	m, view := newManager(t, client)

	_, err := m.Submit(context.Background(), view.ID, "as simmi")
	require.NoError(t, err)

	require.NoError(t, m.SetPersona(view.ID, domain.PersonaCompany))

	_, err = m.Submit(context.Background(), view.ID, "as the company")
	require.NoError(t, err)

	require.Equal(t, 2, client.calls())
	assert.Contains(t, client.instructions[0], "WRITING AS: Simmi Sen Roy")
	assert.Contains(t, client.instructions[1], "WRITING AS: Nextyou")
	// History carries over across the persona switch.
	assert.Equal(t, 3, client.turnCounts[1])
}

func TestSetPersonaRejectsUnknownPersona(t *testing.T) {
	m, view := newManager(t, &stubClient{reply: "ok"})
	assert.Error(t, m.SetPersona(view.ID, "ghost"))
}

func TestEndDiscardsConversation(t *testing.T) {
	m, view := newManager(t, &stubClient{reply: "ok"})

	m.End(view.ID)

	_, err := m.Get(view.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	_, err = m.Submit(context.Background(), view.ID, "anyone there?")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}
