package store

import (
	"cinimagic-be/internal/constant"
	"cinimagic-be/pkg/navigation"
)

// ChatTurn is one entry in a session transcript. Immutable once appended.
type ChatTurn struct {
	Role string `json:"role"` // constant.ChatMessageRoleUser | constant.ChatMessageRoleModel
	Text string `json:"text"`
}

// Session is the mutable state scoped to one authenticated user's
// interaction lifetime. One instance per logged-in session, held in the
// in-memory session repository and passed explicitly; never a process-wide
// singleton.
//
// LastRecommendations holds only the most recent recommendation result
// (overwritten on every recommend call). Transcript holds the complete
// dialogue since login. The two retention policies are different on
// purpose.
type Session struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Authenticated bool   `json:"authenticated"`

	Screen navigation.Screen `json:"screen"`

	LastRecommendations []string   `json:"last_recommendations"`
	Transcript          []ChatTurn `json:"transcript"`
}

// NewSession builds the state for a just-authenticated user: home screen,
// empty recommendation slot, transcript seeded with the CineMind greeting.
func NewSession(id, username string) *Session {
	return &Session{
		ID:            id,
		Username:      username,
		Authenticated: true,
		Screen:        navigation.ScreenHome,
		Transcript: []ChatTurn{
			{Role: constant.ChatMessageRoleModel, Text: constant.CineMindGreeting},
		},
	}
}

// Reset clears the session back to anonymous defaults. Used on logout.
func (s *Session) Reset() {
	s.Username = ""
	s.Authenticated = false
	s.Screen = navigation.ScreenAnonymousChoice
	s.LastRecommendations = nil
	s.Transcript = nil
}

// AppendTurn adds one turn to the transcript. The transcript is append-only
// and unbounded for the life of the session.
func (s *Session) AppendTurn(role, text string) {
	s.Transcript = append(s.Transcript, ChatTurn{Role: role, Text: text})
}
