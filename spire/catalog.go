package spire

// LegalActions enumerates every action the given snapshot accepts, derived
// purely from the snapshot's screen and command availability. The result
// reflects a single next step: energy is checked against the current
// value for each card independently, never against a hypothetical
// sequence of plays.
//
// On any non-terminal screen the result is guaranteed non-empty: EndTurn
// (in combat) or Wait serve as the fallback. Terminal screens yield nil.
func LegalActions(snap *Snapshot) []Action {
	if snap == nil || snap.Terminal() {
		return nil
	}

	var actions []Action

	if snap.InCombat && snap.Commands.Play {
		actions = append(actions, playCardActions(snap)...)
	}
	if snap.InCombat && snap.Commands.Potion {
		actions = append(actions, potionActions(snap)...)
	}
	if snap.Commands.End {
		actions = append(actions, EndTurn(snap))
	}
	if snap.ChoiceAvailable {
		for i := range snap.ChoiceList {
			actions = append(actions, Choose(snap, i))
		}
	}
	if snap.Commands.Proceed {
		actions = append(actions, Proceed(snap))
	}
	if snap.Commands.Cancel {
		actions = append(actions, Cancel(snap))
	}

	// Never hand the decision engine an empty set on an interactive
	// screen; see the invariant on the engine side.
	if len(actions) == 0 {
		if snap.InCombat {
			actions = append(actions, EndTurn(snap))
		} else {
			actions = append(actions, Wait(snap))
		}
	}
	return actions
}

func playCardActions(snap *Snapshot) []Action {
	targets := snap.TargetableMonsters()
	var actions []Action
	for i, c := range snap.Hand {
		if !playable(snap, c) {
			continue
		}
		if c.HasTarget {
			// A targeted card with nothing to hit is not a legal play.
			for _, t := range targets {
				actions = append(actions, PlayCard(snap, i, t))
			}
			continue
		}
		actions = append(actions, PlayCard(snap, i, NoTarget))
	}
	return actions
}

func playable(snap *Snapshot, c Card) bool {
	if !c.IsPlayable {
		return false
	}
	if snap.Player == nil || snap.Player.Energy == Unknown {
		return true
	}
	// Cost below zero is an X-cost card: always payable.
	return c.Cost < 0 || c.Cost <= snap.Player.Energy
}

func potionActions(snap *Snapshot) []Action {
	targets := snap.TargetableMonsters()
	var actions []Action
	for i, p := range snap.Potions {
		if p.IsSlot() {
			continue
		}
		if p.CanUse {
			if p.RequiresTarget {
				for _, t := range targets {
					actions = append(actions, UsePotion(snap, i, t))
				}
			} else {
				actions = append(actions, UsePotion(snap, i, NoTarget))
			}
		}
		if p.CanDiscard {
			actions = append(actions, DiscardPotion(snap, i))
		}
	}
	return actions
}
