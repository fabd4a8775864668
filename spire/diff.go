package spire

import "fmt"

// ChangeKind identifies the type of diff entry between two snapshots.
type ChangeKind string

const (
	ChangeScreen        ChangeKind = "screen"
	ChangePlayerHP      ChangeKind = "player_hp"
	ChangePlayerBlock   ChangeKind = "player_block"
	ChangePlayerEnergy  ChangeKind = "player_energy"
	ChangeGold          ChangeKind = "gold"
	ChangeFloor         ChangeKind = "floor"
	ChangeTurn          ChangeKind = "turn"
	ChangeMonsterHP     ChangeKind = "monster_hp"
	ChangeMonsterIntent ChangeKind = "monster_intent"
	ChangeMonsterDown   ChangeKind = "monster_down"
	ChangeCardDrawn     ChangeKind = "card_drawn"
	ChangeCardGone      ChangeKind = "card_gone"
	ChangeCombatStart   ChangeKind = "combat_start"
	ChangeCombatEnd     ChangeKind = "combat_end"
)

// Change is one observed difference between consecutive snapshots.
type Change struct {
	Kind  ChangeKind `json:"kind"`
	Index int        `json:"index,omitempty"`
	Card  string     `json:"card,omitempty"`
	Delta int        `json:"delta,omitempty"`
	From  string     `json:"from,omitempty"`
	To    string     `json:"to,omitempty"`
}

func (c Change) String() string {
	switch c.Kind {
	case ChangeScreen:
		return fmt.Sprintf("screen %s -> %s", c.From, c.To)
	case ChangeMonsterHP:
		return fmt.Sprintf("monster %d hp %+d", c.Index, c.Delta)
	case ChangeCardDrawn:
		return "drew " + c.Card
	case ChangeCardGone:
		return "left hand: " + c.Card
	default:
		return fmt.Sprintf("%s %+d", c.Kind, c.Delta)
	}
}

// ChangeSummary is the diff between two consecutive snapshots. It feeds
// heuristics and observers only; it is never authoritative state.
type ChangeSummary struct {
	Seq     uint64   `json:"seq"`
	Changes []Change `json:"changes,omitempty"`
}

func (s ChangeSummary) Empty() bool { return len(s.Changes) == 0 }

// Diff summarises what changed from prev to next. A nil prev yields a
// summary containing only the screen entry for next.
func Diff(prev, next *Snapshot) ChangeSummary {
	out := ChangeSummary{Seq: next.Seq}
	if prev == nil {
		out.Changes = append(out.Changes, Change{Kind: ChangeScreen, To: next.ScreenKind.String()})
		return out
	}

	if prev.ScreenKind != next.ScreenKind {
		out.Changes = append(out.Changes, Change{
			Kind: ChangeScreen,
			From: prev.ScreenKind.String(),
			To:   next.ScreenKind.String(),
		})
	}
	diffInt := func(kind ChangeKind, a, b int) {
		if a != b && a != Unknown && b != Unknown {
			out.Changes = append(out.Changes, Change{Kind: kind, Delta: b - a})
		}
	}
	diffInt(ChangeGold, prev.Gold, next.Gold)
	diffInt(ChangeFloor, prev.Floor, next.Floor)

	if !prev.InCombat && next.InCombat {
		out.Changes = append(out.Changes, Change{Kind: ChangeCombatStart})
	}
	if prev.InCombat && !next.InCombat {
		out.Changes = append(out.Changes, Change{Kind: ChangeCombatEnd})
	}

	if prev.Player != nil && next.Player != nil {
		diffInt(ChangePlayerHP, prev.Player.CurrentHP, next.Player.CurrentHP)
		diffInt(ChangePlayerBlock, prev.Player.Block, next.Player.Block)
		diffInt(ChangePlayerEnergy, prev.Player.Energy, next.Player.Energy)
	}
	if prev.InCombat && next.InCombat {
		diffInt(ChangeTurn, prev.Turn, next.Turn)
		out.Changes = append(out.Changes, diffMonsters(prev.Monsters, next.Monsters)...)
		out.Changes = append(out.Changes, diffHand(prev.Hand, next.Hand)...)
	}
	return out
}

// diffMonsters matches by position index; that is the identity contract
// for monsters within one combat.
func diffMonsters(prev, next []Monster) []Change {
	var out []Change
	n := len(prev)
	if len(next) < n {
		n = len(next)
	}
	for i := 0; i < n; i++ {
		a, b := prev[i], next[i]
		if a.CurrentHP != b.CurrentHP {
			out = append(out, Change{Kind: ChangeMonsterHP, Index: i, Delta: b.CurrentHP - a.CurrentHP})
		}
		if a.Intent != b.Intent {
			out = append(out, Change{Kind: ChangeMonsterIntent, Index: i, From: IntentDictionary[a.Intent], To: IntentDictionary[b.Intent]})
		}
		if a.Targetable() && !b.Targetable() {
			out = append(out, Change{Kind: ChangeMonsterDown, Index: i})
		}
	}
	return out
}

// diffHand compares hands as UUID multisets so duplicate copies of a
// card are tracked individually. Output order follows hand order:
// drawn cards first, then departed ones.
func diffHand(prev, next []Card) []Change {
	inNext := make(map[string]int, len(next))
	for _, c := range next {
		inNext[c.UUID]++
	}
	inPrev := make(map[string]int, len(prev))
	for _, c := range prev {
		inPrev[c.UUID]++
	}
	var out []Change
	for _, c := range next {
		if inPrev[c.UUID] > 0 {
			inPrev[c.UUID]--
		} else {
			out = append(out, Change{Kind: ChangeCardDrawn, Card: c.Name})
		}
	}
	for _, c := range prev {
		if inNext[c.UUID] > 0 {
			inNext[c.UUID]--
		} else {
			out = append(out, Change{Kind: ChangeCardGone, Card: c.Name})
		}
	}
	return out
}
