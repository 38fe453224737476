package domain

type SessionID string
type PostID string

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// PersonaID identifies one of the fixed authorial identities.
type PersonaID string

const (
	PersonaSimmi   PersonaID = "simmi"
	PersonaAastha  PersonaID = "aastha"
	PersonaCompany PersonaID = "company"
)

// PersonaNone marks the absence of a persona argument on operations where
// the persona is optional.
const PersonaNone PersonaID = ""

// Persona carries the display data for a PersonaID. The set is fixed;
// personas are never created or destroyed at runtime.
type Persona struct {
	ID   PersonaID
	Name string
	Role string
}

// Personas lists the fixed persona set in display order.
var Personas = []Persona{
	{ID: PersonaSimmi, Name: "Simmi Sen Roy", Role: "Founder & CEO"},
	{ID: PersonaAastha, Name: "Aastha Tomar", Role: "Head of Content"},
	{ID: PersonaCompany, Name: "Nextyou", Role: "Company Voice"},
}

// PersonaByID resolves a PersonaID to its display data.
func PersonaByID(id PersonaID) (Persona, bool) {
	for _, p := range Personas {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}
