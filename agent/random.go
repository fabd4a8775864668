package agent

import (
	"math/rand"

	"spirebot/spire"
)

// Random picks uniformly among the legal actions. It exists as a
// baseline opponent for the heuristic and as a fuzzing driver in tests.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string { return "random" }

func (r *Random) SelectAction(snap *spire.Snapshot, legal []spire.Action) (spire.Action, error) {
	if len(legal) == 0 {
		return spire.Action{}, &NoLegalActionError{Screen: snap.ScreenKind}
	}
	return legal[r.rng.Intn(len(legal))], nil
}
