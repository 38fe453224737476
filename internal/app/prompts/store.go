package prompts

import (
	"fmt"
	"strings"
	"sync"

	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
)

// Store holds the editable prompt fragments. Global sections carry one
// string; per-persona sections carry one string per persona. Construction
// seeds every section, and edits can never leave a per-persona entry empty,
// so the composer always has material to work with.
type Store struct {
	mu        sync.RWMutex
	fragments domain.FragmentSet
}

// NewStore creates a fragment store seeded with the Nextyou prompt pack.
func NewStore() *Store {
	about := make(map[domain.PersonaID]string, len(seedAbout))
	tone := make(map[domain.PersonaID]string, len(seedTone))
	for id, v := range seedAbout {
		about[id] = v
	}
	for id, v := range seedTone {
		tone[id] = v
	}

	return &Store{
		fragments: domain.FragmentSet{
			Master:   seedMaster,
			Company:  seedCompany,
			Market:   seedMarket,
			LinkedIn: seedLinkedIn,
			About:    about,
			Tone:     tone,
		},
	}
}

// Get returns the current content of a section. The persona argument is
// required iff the section is per-persona; any mismatch is
// domain.ErrInvalidSection.
func (s *Store) Get(section domain.Section, persona domain.PersonaID) (string, error) {
	if err := checkSection(section, persona); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	switch section {
	case domain.SectionMaster:
		return s.fragments.Master, nil
	case domain.SectionCompany:
		return s.fragments.Company, nil
	case domain.SectionMarket:
		return s.fragments.Market, nil
	case domain.SectionLinkedIn:
		return s.fragments.LinkedIn, nil
	case domain.SectionAbout:
		return s.fragments.About[persona], nil
	case domain.SectionTone:
		return s.fragments.Tone[persona], nil
	}
	return "", domain.ErrInvalidSection
}

// Set replaces the content of a section. Per-persona entries must stay
// non-empty.
func (s *Store) Set(section domain.Section, value string, persona domain.PersonaID) error {
	if err := checkSection(section, persona); err != nil {
		return err
	}
	if section.PerPersona() && strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: section %q requires non-empty content for persona %q",
			domain.ErrInvalidSection, section, persona)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch section {
	case domain.SectionMaster:
		s.fragments.Master = value
	case domain.SectionCompany:
		s.fragments.Company = value
	case domain.SectionMarket:
		s.fragments.Market = value
	case domain.SectionLinkedIn:
		s.fragments.LinkedIn = value
	case domain.SectionAbout:
		s.fragments.About[persona] = value
	case domain.SectionTone:
		s.fragments.Tone[persona] = value
	}
	return nil
}

// Snapshot returns a value copy of every fragment so a composition reads a
// consistent state even while edits happen.
func (s *Store) Snapshot() domain.FragmentSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	about := make(map[domain.PersonaID]string, len(s.fragments.About))
	tone := make(map[domain.PersonaID]string, len(s.fragments.Tone))
	for id, v := range s.fragments.About {
		about[id] = v
	}
	for id, v := range s.fragments.Tone {
		tone[id] = v
	}

	return domain.FragmentSet{
		Master:   s.fragments.Master,
		Company:  s.fragments.Company,
		Market:   s.fragments.Market,
		LinkedIn: s.fragments.LinkedIn,
		About:    about,
		Tone:     tone,
	}
}

func checkSection(section domain.Section, persona domain.PersonaID) error {
	if !section.Known() {
		return fmt.Errorf("%w: unknown section %q", domain.ErrInvalidSection, section)
	}
	if section.PerPersona() {
		if _, ok := domain.PersonaByID(persona); !ok {
			return fmt.Errorf("%w: section %q requires a persona", domain.ErrInvalidSection, section)
		}
		return nil
	}
	if persona != domain.PersonaNone {
		return fmt.Errorf("%w: section %q is global, persona %q not allowed",
			domain.ErrInvalidSection, section, persona)
	}
	return nil
}
