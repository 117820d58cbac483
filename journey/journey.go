// Package journey tracks where a user stands between signing in and using
// the dashboard.
package journey

import (
	"errors"
)

var ErrInvalidTransition = errors.New("invalid journey transition")

type State string

const (
	Unauthenticated   State = "unauthenticated"
	ProfileIncomplete State = "profile_incomplete"
	AssessmentPending State = "assessment_pending"
	Ready             State = "ready"
)

// Screen is what the client should show for a state
type Screen string

const (
	ScreenLogin        Screen = "login"
	ScreenProfileSetup Screen = "profile-setup"
	ScreenAssessment   Screen = "assessment"
	ScreenDashboard    Screen = "dashboard"
)

var screens = map[State]Screen{
	Unauthenticated:   ScreenLogin,
	ProfileIncomplete: ScreenProfileSetup,
	AssessmentPending: ScreenAssessment,
	Ready:             ScreenDashboard,
}

func (s State) Next() Screen {
	if screen, ok := screens[s]; ok {
		return screen
	}
	return ScreenLogin
}

// In reports whether the state is one of the given states
func (s State) In(states ...State) bool {
	for _, state := range states {
		if s == state {
			return true
		}
	}
	return false
}

type Event string

const (
	SignedIn            Event = "signed_in"
	ProfileSaved        Event = "profile_saved"
	AssessmentSubmitted Event = "assessment_submitted"
	SignedOut           Event = "signed_out"
)

var transitions = map[State]map[Event]State{
	Unauthenticated: {
		SignedIn: ProfileIncomplete,
	},
	ProfileIncomplete: {
		ProfileSaved: AssessmentPending,
		SignedOut:    Unauthenticated,
	},
	AssessmentPending: {
		ProfileSaved:        AssessmentPending,
		AssessmentSubmitted: Ready,
		SignedOut:           Unauthenticated,
	},
	Ready: {
		ProfileSaved: Ready,
		SignedOut:    Unauthenticated,
	},
}

// Transition returns the state reached by an event. Signing in lands on
// ProfileIncomplete; use Resolve to learn the state of a returning user.
func Transition(s State, e Event) (State, error) {
	if next, ok := transitions[s][e]; ok {
		return next, nil
	}
	return s, ErrInvalidTransition
}

// Presence reports which documents of a user exist
type Presence interface {
	HasProfile(uid string) (bool, error)
	HasAssessment(uid string) (bool, error)
}

// Resolve computes the state of a user from the stored documents
func Resolve(p Presence, uid string) (State, error) {
	if uid == "" {
		return Unauthenticated, nil
	}

	hasProfile, err := p.HasProfile(uid)
	if err != nil {
		return Unauthenticated, err
	}
	if !hasProfile {
		return ProfileIncomplete, nil
	}

	hasAssessment, err := p.HasAssessment(uid)
	if err != nil {
		return Unauthenticated, err
	}
	if !hasAssessment {
		return AssessmentPending, nil
	}

	return Ready, nil
}
