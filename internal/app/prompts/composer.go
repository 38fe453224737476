package prompts

import (
	"strings"

	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
)

// closingChecklist is the fixed tail of every composed instruction. It is a
// compile-time constant rather than a store section: the generation
// constraints (hook first, line breaks, CTA, 3-5 hashtags, 1,000-1,500
// characters) are part of the product contract, not editorial content.
const closingChecklist = `When creating LinkedIn posts:
1. Start with a strong hook in the first 2-3 lines
2. Use short paragraphs and line breaks for readability
3. Include personal insights or stories when relevant
4. End with a clear call-to-action or question
5. Add 3-5 relevant hashtags at the end
6. Keep the tone consistent with the profile
7. Make it valuable and actionable for the audience
8. Aim for 1,000-1,500 characters for optimal engagement`

// Compose assembles the single system instruction for a persona from a
// fragment snapshot. Pure and deterministic: same snapshot and persona,
// same instruction. Callers re-compose on every generation request, so a
// fragment edit takes effect on the next turn with no cache to invalidate.
func Compose(fragments domain.FragmentSet, persona domain.Persona) string {
	var b strings.Builder

	b.WriteString(fragments.Master)
	b.WriteString("\n\n---\n\n")

	b.WriteString("WRITING AS: ")
	b.WriteString(persona.Name)
	b.WriteString(" (")
	b.WriteString(persona.Role)
	b.WriteString(")\n\n")
	b.WriteString(fragments.About[persona.ID])
	b.WriteString("\n\n")

	b.WriteString("TONE AND STYLE:\n")
	b.WriteString(fragments.Tone[persona.ID])
	b.WriteString("\n\n")

	b.WriteString("COMPANY INFORMATION:\n")
	b.WriteString(fragments.Company)
	b.WriteString("\n\n")

	b.WriteString("MARKET INSIGHTS:\n")
	b.WriteString(fragments.Market)
	b.WriteString("\n\n")

	b.WriteString("LINKEDIN BEST PRACTICES:\n")
	b.WriteString(fragments.LinkedIn)
	b.WriteString("\n\n")

	b.WriteString(closingChecklist)

	return b.String()
}
