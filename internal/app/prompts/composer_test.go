package prompts_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklab-studio/Nextyoulinkedin/internal/app/prompts"
	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
)

func personaA(t *testing.T) domain.Persona {
	t.Helper()
	p, ok := domain.PersonaByID(domain.PersonaSimmi)
	require.True(t, ok)
	return p
}

func TestComposeFragmentOrder(t *testing.T) {
	store := prompts.NewStore()
	require.NoError(t, store.Set(domain.SectionMaster, "master-sentinel", domain.PersonaNone))
	require.NoError(t, store.Set(domain.SectionAbout, "about-sentinel", domain.PersonaSimmi))
	require.NoError(t, store.Set(domain.SectionTone, "tone-sentinel", domain.PersonaSimmi))
	require.NoError(t, store.Set(domain.SectionCompany, "company-sentinel", domain.PersonaNone))
	require.NoError(t, store.Set(domain.SectionMarket, "market-sentinel", domain.PersonaNone))
	require.NoError(t, store.Set(domain.SectionLinkedIn, "linkedin-sentinel", domain.PersonaNone))

	out := prompts.Compose(store.Snapshot(), personaA(t))

	// Every fragment appears, in the fixed relative order.
	last := -1
	for _, frag := range []string{
		"master-sentinel", "about-sentinel", "tone-sentinel",
		"company-sentinel", "market-sentinel", "linkedin-sentinel",
	} {
		idx := strings.Index(out, frag)
		require.GreaterOrEqual(t, idx, 0, "fragment %q missing", frag)
		assert.Greater(t, idx, last, "fragment %q out of order", frag)
		last = idx
	}
}

func TestComposeIncludesPersonaBlock(t *testing.T) {
	store := prompts.NewStore()
	for _, p := range domain.Personas {
		out := prompts.Compose(store.Snapshot(), p)
		assert.Contains(t, out, "WRITING AS: "+p.Name)
		assert.Contains(t, out, p.Role)
	}
}

func TestComposeClosingChecklistVerbatim(t *testing.T) {
	store := prompts.NewStore()
	for _, p := range domain.Personas {
		out := prompts.Compose(store.Snapshot(), p)
		assert.Contains(t, out, "1. Start with a strong hook in the first 2-3 lines")
		assert.Contains(t, out, "5. Add 3-5 relevant hashtags at the end")
		assert.Contains(t, out, "8. Aim for 1,000-1,500 characters for optimal engagement")
		assert.True(t, strings.HasSuffix(out, "optimal engagement"),
			"checklist must close the instruction")
	}
}

func TestComposeSeesEditsImmediately(t *testing.T) {
	store := prompts.NewStore()
	persona := personaA(t)

	before := prompts.Compose(store.Snapshot(), persona)
	require.NoError(t, store.Set(domain.SectionMarket, "entirely new market data", domain.PersonaNone))
	after := prompts.Compose(store.Snapshot(), persona)

	assert.NotEqual(t, before, after)
	assert.Contains(t, after, "entirely new market data")
	assert.NotContains(t, before, "entirely new market data")
}

func TestComposeIsDeterministic(t *testing.T) {
	store := prompts.NewStore()
	persona := personaA(t)
	snap := store.Snapshot()

	assert.Equal(t, prompts.Compose(snap, persona), prompts.Compose(snap, persona))
}
