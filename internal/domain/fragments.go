package domain

import "errors"

// ErrInvalidSection signals fragment misuse: an unknown section, a persona
// argument supplied for a global section, or a per-persona section accessed
// without one. This is a programming-contract violation, not a runtime
// condition to recover from.
var ErrInvalidSection = errors.New("invalid prompt section")

// Section names one independently editable block of instructional text.
type Section string

const (
	// Global sections: one string each.
	SectionMaster   Section = "master"
	SectionCompany  Section = "company"
	SectionMarket   Section = "market"
	SectionLinkedIn Section = "linkedin"

	// Per-persona sections: one string per persona.
	SectionAbout Section = "about"
	SectionTone  Section = "tone"
)

// PerPersona reports whether the section holds one entry per persona.
func (s Section) PerPersona() bool {
	return s == SectionAbout || s == SectionTone
}

// Known reports whether s names a defined section.
func (s Section) Known() bool {
	switch s {
	case SectionMaster, SectionCompany, SectionMarket, SectionLinkedIn, SectionAbout, SectionTone:
		return true
	}
	return false
}

// FragmentSet is a value snapshot of every fragment. The composer reads a
// FragmentSet so that a concurrent edit cannot tear a single composition.
type FragmentSet struct {
	Master   string
	Company  string
	Market   string
	LinkedIn string
	About    map[PersonaID]string
	Tone     map[PersonaID]string
}
