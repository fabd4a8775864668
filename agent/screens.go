package agent

import (
	"sort"

	"spirebot/spire"
)

// Events where the last option is the gamble worth taking.
var greedyEvents = map[string]bool{
	"Vampires":       true,
	"Masked Bandits": true,
	"Knowing Skull":  true,
	"Ghosts":         true,
	"Liars Game":     true,
	"Golden Idol":    true,
	"Drug Dealer":    true,
	"The Library":    true,
}

// handleScreen resolves every screen that presents a choice list.
func (h *Heuristic) handleScreen(snap *spire.Snapshot, legal []spire.Action) spire.Action {
	switch snap.ScreenKind {
	case spire.ScreenKindEvent:
		return h.chooseEventOption(snap)
	case spire.ScreenKindChest:
		return spire.ChooseNamed(snap, "open")
	case spire.ScreenKindShopRoom:
		if !h.visitedShop {
			h.visitedShop = true
			return spire.ChooseNamed(snap, "shop")
		}
		h.visitedShop = false
		return spire.Proceed(snap)
	case spire.ScreenKindRest:
		return h.chooseRestOption(snap)
	case spire.ScreenKindCardReward:
		return h.chooseCardReward(snap)
	case spire.ScreenKindCombatReward:
		return h.chooseCombatReward(snap)
	case spire.ScreenKindMap:
		return h.chooseMapNode(snap)
	case spire.ScreenKindBossReward:
		return h.chooseBossRelic(snap)
	case spire.ScreenKindShop:
		return h.shopAction(snap)
	case spire.ScreenKindGrid:
		return h.gridAction(snap)
	case spire.ScreenKindHandSelect:
		return h.handSelectAction(snap)
	default:
		if snap.Commands.Proceed {
			return spire.Proceed(snap)
		}
		if len(snap.ChoiceList) > 0 {
			return spire.Choose(snap, 0)
		}
		return legal[0]
	}
}

func (h *Heuristic) chooseEventOption(snap *spire.Snapshot) spire.Action {
	ev := snap.Screen.Event
	if ev != nil && greedyEvents[ev.EventID] && len(ev.Options) > 0 {
		return spire.Choose(snap, len(ev.Options)-1)
	}
	return spire.Choose(snap, 0)
}

// chooseRestOption walks the fixed rest ladder: heal when hurt, heal
// before the act boss, otherwise improve the deck or the relic.
func (h *Heuristic) chooseRestOption(snap *spire.Snapshot) spire.Action {
	rest := snap.Screen.Rest
	if rest == nil || len(rest.Options) == 0 || rest.HasRested {
		return spire.Proceed(snap)
	}
	has := func(opt spire.RestOption) bool {
		for _, o := range rest.Options {
			if o == opt {
				return true
			}
		}
		return false
	}
	preBoss := snap.Act != 1 && snap.Floor%17 == 15
	switch {
	case has(spire.RestOptionRest) && snap.CurrentHP < snap.MaxHP/2:
		return spire.ChooseNamed(snap, "rest")
	case has(spire.RestOptionRest) && preBoss && snap.CurrentHP*10 < snap.MaxHP*9:
		return spire.ChooseNamed(snap, "rest")
	case has(spire.RestOptionSmith):
		return spire.ChooseNamed(snap, "smith")
	case has(spire.RestOptionLift):
		return spire.ChooseNamed(snap, "lift")
	case has(spire.RestOptionDig):
		return spire.ChooseNamed(snap, "dig")
	case has(spire.RestOptionRest) && snap.CurrentHP < snap.MaxHP:
		return spire.ChooseNamed(snap, "rest")
	default:
		return spire.Choose(snap, 0)
	}
}

func (h *Heuristic) chooseCardReward(snap *spire.Snapshot) spire.Action {
	screen := snap.Screen.CardReward
	if screen == nil || len(screen.Cards) == 0 {
		return spire.Proceed(snap)
	}
	pool := screen.Cards
	if screen.CanSkip && !snap.InCombat {
		// When skipping is free, only take cards the deck still wants:
		// a priority card we hold fewer than two copies of.
		var wanted []spire.Card
		for _, c := range pool {
			if h.prefs.cardRank(c.Name) < len(h.prefs.CardPriority) && snap.CountInDeck(c.ID) < 2 {
				wanted = append(wanted, c)
			}
		}
		pool = wanted
	}
	if len(pool) > 0 {
		pick := pool[0]
		for _, c := range pool[1:] {
			if h.prefs.cardRank(c.Name) < h.prefs.cardRank(pick.Name) {
				pick = c
			}
		}
		return spire.ChooseNamed(snap, pick.Name)
	}
	if screen.CanBowl {
		return spire.ChooseNamed(snap, "bowl")
	}
	h.skippedCards = true
	return spire.Cancel(snap)
}

func (h *Heuristic) chooseCombatReward(snap *spire.Snapshot) spire.Action {
	screen := snap.Screen.CombatReward
	if screen == nil || len(screen.Rewards) == 0 {
		return spire.Proceed(snap)
	}
	bestIdx := -1
	bestRank := int(^uint(0) >> 1)
	for i, r := range screen.Rewards {
		if r.Kind == spire.RewardKindPotion && snap.PotionsFull() {
			continue
		}
		if r.Kind == spire.RewardKindCard && h.skippedCards {
			continue
		}
		if rank := h.prefs.rewardRank(r.Kind); rank < bestRank {
			bestRank = rank
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		return spire.Choose(snap, bestIdx)
	}
	h.skippedCards = false
	return spire.Proceed(snap)
}

func (h *Heuristic) chooseBossRelic(snap *spire.Snapshot) spire.Action {
	screen := snap.Screen.BossReward
	if screen == nil || len(screen.Relics) == 0 {
		return spire.Proceed(snap)
	}
	return spire.ChooseNamed(snap, screen.Relics[0].Name)
}

// shopAction spends gold in a fixed order: purge first, then priority
// cards, then relics, and leaves when nothing affordable remains.
func (h *Heuristic) shopAction(snap *spire.Snapshot) spire.Action {
	shop := snap.Screen.Shop
	if shop == nil {
		return spire.Cancel(snap)
	}
	if shop.PurgeAvailable && snap.Gold >= shop.PurgeCost {
		return spire.ChooseNamed(snap, "purge")
	}
	for _, c := range shop.Cards {
		if snap.Gold >= c.Price && h.prefs.cardRank(c.Name) < len(h.prefs.CardPriority) {
			return spire.ChooseNamed(snap, c.Name)
		}
	}
	for _, r := range shop.Relics {
		if snap.Gold >= r.Price {
			return spire.ChooseNamed(snap, r.Name)
		}
	}
	return spire.Cancel(snap)
}

// gridAction picks one card per visit; the screen comes back until the
// required count is reached, so a single best-next choice converges.
func (h *Heuristic) gridAction(snap *spire.Snapshot) spire.Action {
	grid := snap.Screen.Grid
	if grid == nil || !snap.ChoiceAvailable || len(grid.Cards) == 0 {
		return spire.Proceed(snap)
	}
	if grid.ConfirmUp {
		return spire.Proceed(snap)
	}
	// Upgrading wants the best card; purging and transforming want the
	// worst.
	wantBest := grid.ForUpgrade
	idx := 0
	for i, c := range grid.Cards {
		ri, rb := h.prefs.cardRank(c.Name), h.prefs.cardRank(grid.Cards[idx].Name)
		if wantBest && ri < rb {
			idx = i
		}
		if !wantBest && ri > rb {
			idx = i
		}
	}
	return spire.Choose(snap, idx)
}

// handSelectAction keeps at most three picks, choosing the lowest
// priority cards to give up.
func (h *Heuristic) handSelectAction(snap *spire.Snapshot) spire.Action {
	hs := snap.Screen.HandSelect
	if hs == nil || !snap.ChoiceAvailable || len(hs.Cards) == 0 {
		return spire.Proceed(snap)
	}
	limit := hs.NumCards
	if limit > 3 {
		limit = 3
	}
	if len(hs.SelectedCards) >= limit {
		return spire.Proceed(snap)
	}
	order := make([]int, len(hs.Cards))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return h.prefs.cardRank(hs.Cards[order[a]].Name) > h.prefs.cardRank(hs.Cards[order[b]].Name)
	})
	return spire.Choose(snap, order[0])
}
