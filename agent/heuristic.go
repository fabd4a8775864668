package agent

import (
	"spirebot/spire"
)

// Heuristic is the deterministic production strategy. Combat runs a
// fixed pipeline per turn: assess opponent intents, evaluate the hand,
// select a target, commit. Identical snapshots always yield the
// identical action. Non-combat screens are handled by fixed comparators
// from Preferences.
type Heuristic struct {
	prefs Preferences

	// Cross-screen memory, mirroring how a human routes a run.
	visitedShop  bool
	skippedCards bool
	mapRoute     []int
}

func NewHeuristic(prefs Preferences) *Heuristic {
	return &Heuristic{prefs: prefs}
}

func (h *Heuristic) Name() string { return "heuristic" }

// SelectAction implements Decider.
func (h *Heuristic) SelectAction(snap *spire.Snapshot, legal []spire.Action) (spire.Action, error) {
	if len(legal) == 0 {
		return spire.Action{}, &NoLegalActionError{Screen: snap.ScreenKind}
	}
	if snap.ChoiceAvailable {
		return h.handleScreen(snap, legal), nil
	}
	if snap.Commands.Proceed {
		return spire.Proceed(snap), nil
	}
	if snap.InCombat && snap.Commands.Play {
		return h.combatAction(snap, legal), nil
	}
	if snap.Commands.End {
		return spire.EndTurn(snap), nil
	}
	if snap.Commands.Cancel {
		return spire.Cancel(snap), nil
	}
	return legal[0], nil
}

// intentReport is the opponent-intent assessment for one combat turn.
type intentReport struct {
	incoming     int
	anyAttack    bool
	deadly       bool
	aliveCount   int
	totalAliveHP int
	maxAliveHP   int
}

func (h *Heuristic) assessIntents(snap *spire.Snapshot) intentReport {
	var r intentReport
	r.incoming = snap.IncomingDamage()
	for _, m := range snap.Monsters {
		if !m.Targetable() {
			continue
		}
		r.aliveCount++
		hp := m.CurrentHP + m.Block
		r.totalAliveHP += hp
		if hp > r.maxAliveHP {
			r.maxAliveHP = hp
		}
		if m.Intent.IsAttack() || m.Intent == spire.IntentNone {
			r.anyAttack = true
		}
	}
	if snap.Player != nil && snap.Player.CurrentHP != spire.Unknown {
		r.deadly = r.incoming-snap.Player.Block >= snap.Player.CurrentHP
	}
	return r
}

// handCandidate is one playable hand card with the targets the catalog
// offered for it.
type handCandidate struct {
	index   int
	card    spire.Card
	profile cardProfile
	targets []int
	actions []spire.Action
}

func collectPlays(snap *spire.Snapshot, legal []spire.Action) []handCandidate {
	byIndex := map[int]*handCandidate{}
	var order []int
	for _, a := range legal {
		if a.Kind != spire.ActionKindPlayCard {
			continue
		}
		cand, ok := byIndex[a.CardIndex]
		if !ok {
			card := snap.Hand[a.CardIndex]
			cand = &handCandidate{index: a.CardIndex, card: card, profile: profileFor(card)}
			byIndex[a.CardIndex] = cand
			order = append(order, a.CardIndex)
		}
		cand.actions = append(cand.actions, a)
		if a.TargetIndex != spire.NoTarget {
			cand.targets = append(cand.targets, a.TargetIndex)
		}
	}
	out := make([]handCandidate, 0, len(order))
	for _, i := range order {
		out = append(out, *byIndex[i])
	}
	return out
}

// combatAction picks the card play (or end-turn) for this combat turn.
func (h *Heuristic) combatAction(snap *spire.Snapshot, legal []spire.Action) spire.Action {
	// In boss rooms potions are spent rather than hoarded.
	if snap.RoomType == "MonsterRoomBoss" && snap.Commands.Potion {
		if a, ok := h.usePotion(snap, legal); ok {
			return a
		}
	}

	plays := collectPlays(snap, legal)
	if len(plays) == 0 {
		if snap.Commands.End {
			return spire.EndTurn(snap)
		}
		return legal[0]
	}

	report := h.assessIntents(snap)
	cand := h.evaluateHand(snap, plays, report)
	return h.commit(snap, cand)
}

// evaluateHand chooses which card to play. Priority order: a lethal play
// when anything is attacking, then a block play when the incoming attack
// would otherwise kill, then the general ordering. Ties always break by
// card priority, then lower cost, then earliest hand position.
func (h *Heuristic) evaluateHand(snap *spire.Snapshot, plays []handCandidate, report intentReport) handCandidate {
	if report.anyAttack {
		if lethal := filterCandidates(plays, func(c handCandidate) bool {
			return h.isLethal(c, report)
		}); len(lethal) > 0 {
			return h.best(lethal)
		}
	}
	if report.deadly {
		if blockers := filterCandidates(plays, func(c handCandidate) bool {
			return c.profile.Block > 0
		}); len(blockers) > 0 {
			return h.best(blockers)
		}
	}

	pool := plays
	// Already safe this turn: favour offense over stacking more block.
	safeMargin := snap.Act + 4
	if snap.Act == spire.Unknown {
		safeMargin = 5
	}
	if snap.Player != nil && snap.Player.Block > report.incoming-safeMargin {
		if offensive := filterCandidates(pool, func(c handCandidate) bool {
			return !c.profile.Defensive
		}); len(offensive) > 0 {
			pool = offensive
		}
	}

	// Free non-attacks first: they only add value before attacking.
	if zeroSkills := filterCandidates(pool, func(c handCandidate) bool {
		return c.card.Cost == 0 && c.card.Type != spire.CardTypeAttack
	}); len(zeroSkills) > 0 {
		return h.best(zeroSkills)
	}

	choice := h.best(pool)
	// Against a crowd, trade a single-target attack for an AoE one.
	if report.aliveCount > 1 && choice.card.Type == spire.CardTypeAttack && !choice.profile.AOE {
		if aoe := filterCandidates(pool, func(c handCandidate) bool {
			return c.profile.AOE
		}); len(aoe) > 0 {
			return h.best(aoe)
		}
	}
	return choice
}

// isLethal reports whether one play of the candidate would drop every
// remaining monster to zero.
func (h *Heuristic) isLethal(c handCandidate, report intentReport) bool {
	if c.profile.Damage <= 0 {
		return false
	}
	if c.profile.AOE {
		return c.profile.Damage >= report.maxAliveHP
	}
	return report.aliveCount == 1 && c.profile.Damage >= report.totalAliveHP
}

// best applies the deterministic tie-break: preference rank, then lower
// cost, then earliest hand position.
func (h *Heuristic) best(plays []handCandidate) handCandidate {
	choice := plays[0]
	for _, c := range plays[1:] {
		if h.better(c, choice) {
			choice = c
		}
	}
	return choice
}

func (h *Heuristic) better(a, b handCandidate) bool {
	ra, rb := h.prefs.cardRank(a.card.Name), h.prefs.cardRank(b.card.Name)
	if ra != rb {
		return ra < rb
	}
	if a.card.Cost != b.card.Cost {
		return a.card.Cost < b.card.Cost
	}
	return a.index < b.index
}

// commit resolves the target and returns the matching catalog action:
// attacks finish off the weakest monster, everything else lands on the
// biggest one.
func (h *Heuristic) commit(snap *spire.Snapshot, cand handCandidate) spire.Action {
	if len(cand.targets) == 0 {
		return cand.actions[0]
	}
	wantLow := cand.card.Type == spire.CardTypeAttack
	target := cand.targets[0]
	for _, t := range cand.targets[1:] {
		if wantLow {
			if snap.Monsters[t].CurrentHP < snap.Monsters[target].CurrentHP {
				target = t
			}
		} else {
			if snap.Monsters[t].CurrentHP > snap.Monsters[target].CurrentHP {
				target = t
			}
		}
	}
	for _, a := range cand.actions {
		if a.TargetIndex == target {
			return a
		}
	}
	return cand.actions[0]
}

// usePotion returns the first usable potion action, aimed at the weakest
// monster when it needs a target.
func (h *Heuristic) usePotion(snap *spire.Snapshot, legal []spire.Action) (spire.Action, bool) {
	var chosen *spire.Action
	for i := range legal {
		a := legal[i]
		if a.Kind != spire.ActionKindUsePotion {
			continue
		}
		if chosen == nil || a.PotionIndex < chosen.PotionIndex {
			chosen = &legal[i]
			continue
		}
		if a.PotionIndex == chosen.PotionIndex && a.TargetIndex != spire.NoTarget &&
			chosen.TargetIndex != spire.NoTarget &&
			snap.Monsters[a.TargetIndex].CurrentHP < snap.Monsters[chosen.TargetIndex].CurrentHP {
			chosen = &legal[i]
		}
	}
	if chosen == nil {
		return spire.Action{}, false
	}
	return *chosen, true
}

func filterCandidates(plays []handCandidate, keep func(handCandidate) bool) []handCandidate {
	var out []handCandidate
	for _, c := range plays {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
