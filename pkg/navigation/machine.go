package navigation

import (
	"fmt"

	"cinimagic-be/internal/pkg/apperrors"
)

// Screen is a closed enumeration of every place a user can be.
type Screen string

const (
	ScreenAnonymousChoice Screen = "ANONYMOUS_CHOICE"
	ScreenLogin           Screen = "LOGIN"
	ScreenSignup          Screen = "SIGNUP"
	ScreenHome            Screen = "HOME"
	ScreenRecommendations Screen = "RECOMMENDATIONS"
	ScreenChat            Screen = "CHAT"
)

// Action is a discrete user interaction (a button press in the client).
type Action string

const (
	ActionChooseLogin         Action = "CHOOSE_LOGIN"
	ActionChooseSignup        Action = "CHOOSE_SIGNUP"
	ActionLoginSucceeded      Action = "LOGIN_SUCCEEDED"
	ActionLoginFailed         Action = "LOGIN_FAILED"
	ActionSignupSucceeded     Action = "SIGNUP_SUCCEEDED"
	ActionSignupFailed        Action = "SIGNUP_FAILED"
	ActionOpenRecommendations Action = "OPEN_RECOMMENDATIONS"
	ActionOpenChat            Action = "OPEN_CHAT"
	ActionGoHome              Action = "GO_HOME"
	ActionLogout              Action = "LOGOUT"
)

var allScreens = map[Screen]bool{
	ScreenAnonymousChoice: true,
	ScreenLogin:           true,
	ScreenSignup:          true,
	ScreenHome:            true,
	ScreenRecommendations: true,
	ScreenChat:            true,
}

var allActions = map[Action]bool{
	ActionChooseLogin:         true,
	ActionChooseSignup:        true,
	ActionLoginSucceeded:      true,
	ActionLoginFailed:         true,
	ActionSignupSucceeded:     true,
	ActionSignupFailed:        true,
	ActionOpenRecommendations: true,
	ActionOpenChat:            true,
	ActionGoHome:              true,
	ActionLogout:              true,
}

type transition struct {
	From Screen
	On   Action
	To   Screen
}

// rules is the complete transition table. Failed login/signup stay where
// they are; logout is allowed from every authenticated screen.
var rules = []transition{
	{ScreenAnonymousChoice, ActionChooseLogin, ScreenLogin},
	{ScreenAnonymousChoice, ActionChooseSignup, ScreenSignup},

	{ScreenLogin, ActionLoginSucceeded, ScreenHome},
	{ScreenLogin, ActionLoginFailed, ScreenLogin},
	{ScreenLogin, ActionChooseSignup, ScreenSignup},

	{ScreenSignup, ActionSignupSucceeded, ScreenLogin},
	{ScreenSignup, ActionSignupFailed, ScreenSignup},

	{ScreenHome, ActionOpenRecommendations, ScreenRecommendations},
	{ScreenHome, ActionOpenChat, ScreenChat},
	{ScreenHome, ActionGoHome, ScreenHome},
	{ScreenHome, ActionLogout, ScreenAnonymousChoice},

	{ScreenRecommendations, ActionGoHome, ScreenHome},
	{ScreenRecommendations, ActionOpenChat, ScreenChat},
	{ScreenRecommendations, ActionOpenRecommendations, ScreenRecommendations},
	{ScreenRecommendations, ActionLogout, ScreenAnonymousChoice},

	{ScreenChat, ActionGoHome, ScreenHome},
	{ScreenChat, ActionOpenRecommendations, ScreenRecommendations},
	{ScreenChat, ActionOpenChat, ScreenChat},
	{ScreenChat, ActionLogout, ScreenAnonymousChoice},
}

type transitionKey struct {
	from Screen
	on   Action
}

// Machine resolves (screen, action) pairs against the transition table.
// The table is validated once at construction; there is no runtime
// fallthrough for unknown screens or actions.
type Machine struct {
	table map[transitionKey]Screen
}

func NewMachine() *Machine {
	m, err := build(rules)
	if err != nil {
		// The table is a package-level literal; a bad entry is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return m
}

func build(rules []transition) (*Machine, error) {
	table := make(map[transitionKey]Screen, len(rules))
	for _, r := range rules {
		if !allScreens[r.From] || !allScreens[r.To] {
			return nil, fmt.Errorf("navigation: unknown screen in transition %v", r)
		}
		if !allActions[r.On] {
			return nil, fmt.Errorf("navigation: unknown action in transition %v", r)
		}
		key := transitionKey{from: r.From, on: r.On}
		if _, exists := table[key]; exists {
			return nil, fmt.Errorf("navigation: duplicate transition for %s on %s", r.From, r.On)
		}
		table[key] = r.To
	}
	return &Machine{table: table}, nil
}

// Initial returns the screen every machine starts at.
func (m *Machine) Initial() Screen {
	return ScreenAnonymousChoice
}

// Next resolves one action. Unknown (screen, action) pairs are rejected
// with a ValidationError and leave the caller's state untouched.
func (m *Machine) Next(from Screen, on Action) (Screen, error) {
	if !allActions[on] {
		return from, &apperrors.ValidationError{Message: fmt.Sprintf("unknown action %q", on)}
	}
	to, ok := m.table[transitionKey{from: from, on: on}]
	if !ok {
		return from, &apperrors.ValidationError{Message: fmt.Sprintf("action %q is not allowed on screen %q", on, from)}
	}
	return to, nil
}

// Authenticated reports whether a screen sits behind login.
func (m *Machine) Authenticated(s Screen) bool {
	switch s {
	case ScreenHome, ScreenRecommendations, ScreenChat:
		return true
	}
	return false
}
