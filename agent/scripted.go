package agent

import (
	"errors"

	"spirebot/spire"
)

// ErrScriptExhausted is returned when a Scripted decider runs out of
// steps while the game still expects decisions.
var ErrScriptExhausted = errors.New("scripted decider exhausted")

// Scripted replays a fixed sequence of action kinds, one per call. Each
// step takes the first legal action of its kind, so scripted tests stay
// valid against whatever indices the catalog produced.
type Scripted struct {
	steps []spire.ActionKind
	pos   int
}

func NewScripted(steps ...spire.ActionKind) *Scripted {
	return &Scripted{steps: steps}
}

func (s *Scripted) Name() string { return "scripted" }

// Remaining returns how many steps have not run yet.
func (s *Scripted) Remaining() int { return len(s.steps) - s.pos }

func (s *Scripted) SelectAction(snap *spire.Snapshot, legal []spire.Action) (spire.Action, error) {
	if len(legal) == 0 {
		return spire.Action{}, &NoLegalActionError{Screen: snap.ScreenKind}
	}
	if s.pos >= len(s.steps) {
		return spire.Action{}, ErrScriptExhausted
	}
	want := s.steps[s.pos]
	s.pos++
	for _, a := range legal {
		if a.Kind == want {
			return a, nil
		}
	}
	return spire.Action{}, errors.New("scripted step " + want.String() + " not legal here")
}
