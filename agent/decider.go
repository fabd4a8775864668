// Package agent holds the decision strategies that pick one action per
// inbound state. Strategies are interchangeable behind the Decider
// interface; the heuristic one is the production default, the random and
// scripted ones exist for baselines and tests.
package agent

import (
	"fmt"

	"spirebot/spire"
)

// Decider is the core interface all strategies implement.
type Decider interface {
	// SelectAction is called once per reconciled snapshot and must
	// return exactly one action valid for it. The legal set is the
	// catalog's enumeration; strategies may also build screen-specific
	// actions (named choices, proceed) from the snapshot itself.
	SelectAction(snap *spire.Snapshot, legal []spire.Action) (spire.Action, error)
	// Name returns a human-readable identifier for debugging.
	Name() string
}

// NoLegalActionError reports an empty legal-action set on a screen that
// still expects interaction. The catalog guarantees this cannot happen,
// so reaching it is an invariant violation and always fatal: silently
// defaulting to some action could push an illegal command into the game.
type NoLegalActionError struct {
	Screen spire.ScreenKind
}

func (e *NoLegalActionError) Error() string {
	return fmt.Sprintf("no legal action on non-terminal screen %s", e.Screen)
}
