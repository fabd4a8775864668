package statesync

import (
	"encoding/json"

	"spirebot/protocol"
	"spirebot/spire"
)

func cardFromWire(w protocol.WireCard) spire.Card {
	return spire.Card{
		ID:         w.ID,
		Name:       w.Name,
		Type:       spire.CardTypeFromName(w.Type),
		Rarity:     spire.CardRarityFromName(w.Rarity),
		UUID:       w.UUID,
		Upgrades:   w.Upgrades,
		Cost:       w.Cost,
		HasTarget:  w.HasTarget,
		IsPlayable: w.IsPlayable,
		Exhausts:   w.Exhausts,
		Misc:       w.Misc,
		Price:      w.Price,
	}
}

func cardsFromWire(ws []protocol.WireCard) []spire.Card {
	if ws == nil {
		return nil
	}
	out := make([]spire.Card, 0, len(ws))
	for _, w := range ws {
		out = append(out, cardFromWire(w))
	}
	return out
}

func relicFromWire(w protocol.WireRelic) spire.Relic {
	return spire.Relic{ID: w.ID, Name: w.Name, Counter: w.Counter, Price: w.Price}
}

func relicsFromWire(ws []protocol.WireRelic) []spire.Relic {
	if ws == nil {
		return nil
	}
	out := make([]spire.Relic, 0, len(ws))
	for _, w := range ws {
		out = append(out, relicFromWire(w))
	}
	return out
}

func potionFromWire(w protocol.WirePotion) spire.Potion {
	return spire.Potion{
		ID:             w.ID,
		Name:           w.Name,
		CanUse:         w.CanUse,
		CanDiscard:     w.CanDiscard,
		RequiresTarget: w.RequiresTarget,
		Price:          w.Price,
	}
}

func potionsFromWire(ws []protocol.WirePotion) []spire.Potion {
	if ws == nil {
		return nil
	}
	out := make([]spire.Potion, 0, len(ws))
	for _, w := range ws {
		out = append(out, potionFromWire(w))
	}
	return out
}

func powersFromWire(ws []protocol.WirePower) []spire.Power {
	out := make([]spire.Power, 0, len(ws))
	for _, w := range ws {
		out = append(out, spire.Power{ID: w.ID, Name: w.Name, Amount: w.Amount})
	}
	return out
}

func playerFromWire(w *protocol.WirePlayer) *spire.Player {
	if w == nil {
		return nil
	}
	p := &spire.Player{
		MaxHP:     w.MaxHP,
		CurrentHP: w.CurrentHP,
		Block:     w.Block,
		Energy:    w.Energy,
		Powers:    powersFromWire(w.Powers),
	}
	for _, o := range w.Orbs {
		p.Orbs = append(p.Orbs, spire.Orb{ID: o.ID, Name: o.Name, EvokeAmount: o.EvokeAmount, PassiveAmount: o.PassiveAmount})
	}
	return p
}

func monstersFromWire(ws []protocol.WireMonster) []spire.Monster {
	if ws == nil {
		return nil
	}
	out := make([]spire.Monster, 0, len(ws))
	for _, w := range ws {
		out = append(out, spire.Monster{
			ID:                 w.ID,
			Name:               w.Name,
			MaxHP:              w.MaxHP,
			CurrentHP:          w.CurrentHP,
			Block:              w.Block,
			Intent:             spire.IntentFromName(w.Intent),
			HalfDead:           w.HalfDead,
			IsGone:             w.IsGone,
			MoveID:             w.MoveID,
			LastMoveID:         w.LastMoveID,
			SecondLastMoveID:   w.SecondLastMoveID,
			MoveBaseDamage:     w.MoveBaseDamage,
			MoveAdjustedDamage: w.MoveAdjustedDamage,
			MoveHits:           w.MoveHits,
			Powers:             powersFromWire(w.Powers),
		})
	}
	return out
}

func nodeFromWire(w protocol.WireNode) spire.MapNode {
	node := spire.MapNode{X: w.X, Y: w.Y, Symbol: w.Symbol}
	for _, c := range w.Children {
		node.Children = append(node.Children, spire.MapCoord{X: c.X, Y: c.Y})
	}
	return node
}

func mapFromWire(ws []protocol.WireNode) *spire.MapGraph {
	if ws == nil {
		return nil
	}
	g := spire.NewMapGraph()
	for _, w := range ws {
		g.Add(nodeFromWire(w))
	}
	return g
}

func commandsFromWire(cmds []string) spire.CommandSet {
	var set spire.CommandSet
	for _, cmd := range cmds {
		switch cmd {
		case "end":
			set.End = true
		case "potion":
			set.Potion = true
		case "play":
			set.Play = true
		case "proceed", "confirm":
			set.Proceed = true
		case "cancel", "leave", "return", "skip":
			set.Cancel = true
		case "start":
			set.Start = true
		case "state":
			set.State = true
		}
	}
	return set
}

// screenFromWire decodes the per-kind screen_state payload. A nil
// payload yields an empty Screen; the snapshot then carries the kind
// with no detail, which downstream code treats as "detail unknown".
func screenFromWire(kind spire.ScreenKind, raw json.RawMessage) (spire.Screen, error) {
	var out spire.Screen
	if len(raw) == 0 {
		return out, nil
	}
	decode := func(v interface{}) error {
		if err := json.Unmarshal(raw, v); err != nil {
			return protocol.Errorf("bad screen_state for %s: %v", kind, err)
		}
		return nil
	}
	switch kind {
	case spire.ScreenKindEvent:
		var w protocol.WireEventScreen
		if err := decode(&w); err != nil {
			return out, err
		}
		ev := &spire.EventScreen{Name: w.EventName, EventID: w.EventID, BodyText: w.BodyText}
		for _, o := range w.Options {
			ev.Options = append(ev.Options, spire.EventOption{Text: o.Text, Label: o.Label, Disabled: o.Disabled, ChoiceIndex: o.ChoiceIndex})
		}
		out.Event = ev

	case spire.ScreenKindChest:
		var w protocol.WireChestScreen
		if err := decode(&w); err != nil {
			return out, err
		}
		out.Chest = &spire.ChestScreen{Kind: spire.ChestKindFromName(w.ChestType), Open: w.ChestOpen}

	case spire.ScreenKindRest:
		var w protocol.WireRestScreen
		if err := decode(&w); err != nil {
			return out, err
		}
		rest := &spire.RestScreen{HasRested: w.HasRested}
		for _, name := range w.RestOptions {
			rest.Options = append(rest.Options, spire.RestOptionFromName(name))
		}
		out.Rest = rest

	case spire.ScreenKindCardReward:
		var w protocol.WireCardRewardScreen
		if err := decode(&w); err != nil {
			return out, err
		}
		out.CardReward = &spire.CardRewardScreen{
			Cards:   cardsFromWire(w.Cards),
			CanBowl: w.BowlAvailable,
			CanSkip: w.SkipAvailable,
		}

	case spire.ScreenKindCombatReward:
		var w protocol.WireCombatRewardScreen
		if err := decode(&w); err != nil {
			return out, err
		}
		screen := &spire.CombatRewardScreen{}
		for _, r := range w.Rewards {
			reward := spire.CombatReward{Kind: spire.RewardKindFromName(r.RewardType), Gold: r.Gold}
			if r.Relic != nil {
				relic := relicFromWire(*r.Relic)
				reward.Relic = &relic
			}
			if r.Potion != nil {
				potion := potionFromWire(*r.Potion)
				reward.Potion = &potion
			}
			if r.Link != nil {
				link := relicFromWire(*r.Link)
				reward.Link = &link
			}
			screen.Rewards = append(screen.Rewards, reward)
		}
		out.CombatReward = screen

	case spire.ScreenKindMap:
		var w protocol.WireMapScreen
		if err := decode(&w); err != nil {
			return out, err
		}
		screen := &spire.MapScreen{BossAvailable: w.BossAvailable}
		if w.CurrentNode != nil {
			node := nodeFromWire(*w.CurrentNode)
			screen.CurrentNode = &node
		}
		for _, n := range w.NextNodes {
			screen.NextNodes = append(screen.NextNodes, nodeFromWire(n))
		}
		screen.FirstFloor = len(screen.NextNodes) > 0 && screen.NextNodes[0].Y == 0
		out.Map = screen

	case spire.ScreenKindBossReward:
		var w protocol.WireBossRewardScreen
		if err := decode(&w); err != nil {
			return out, err
		}
		out.BossReward = &spire.BossRewardScreen{Relics: relicsFromWire(w.Relics)}

	case spire.ScreenKindShop:
		var w protocol.WireShopScreen
		if err := decode(&w); err != nil {
			return out, err
		}
		out.Shop = &spire.ShopScreen{
			Cards:          cardsFromWire(w.Cards),
			Relics:         relicsFromWire(w.Relics),
			Potions:        potionsFromWire(w.Potions),
			PurgeAvailable: w.PurgeAvailable,
			PurgeCost:      w.PurgeCost,
		}

	case spire.ScreenKindGrid:
		var w protocol.WireGridScreen
		if err := decode(&w); err != nil {
			return out, err
		}
		out.Grid = &spire.GridScreen{
			Cards:         cardsFromWire(w.Cards),
			SelectedCards: cardsFromWire(w.SelectedCards),
			NumCards:      w.NumCards,
			AnyNumber:     w.AnyNumber,
			ConfirmUp:     w.ConfirmUp,
			ForUpgrade:    w.ForUpgrade,
			ForTransform:  w.ForTransform,
			ForPurge:      w.ForPurge,
		}

	case spire.ScreenKindHandSelect:
		var w protocol.WireHandSelectScreen
		if err := decode(&w); err != nil {
			return out, err
		}
		out.HandSelect = &spire.HandSelectScreen{
			Cards:         cardsFromWire(w.Hand),
			SelectedCards: cardsFromWire(w.Selected),
			NumCards:      w.MaxCards,
			CanPickZero:   w.CanPickZero,
		}

	case spire.ScreenKindGameOver:
		var w protocol.WireGameOverScreen
		if err := decode(&w); err != nil {
			return out, err
		}
		out.GameOver = &spire.GameOverScreen{Score: w.Score, Victory: w.Victory}
	}
	return out, nil
}
