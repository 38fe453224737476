package domain

// Turn is one message exchanged in a conversation, attributed to the user
// or the assistant. Immutable once appended.
type Turn struct {
	Speaker Role
	Text    string
}

// Conversation is the ordered, append-only turn history of one session.
// It is transient: nothing outside the owning session references it, and it
// is discarded when the session ends.
type Conversation []Turn
