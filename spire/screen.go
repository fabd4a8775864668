package spire

// Screen carries the per-kind detail of the active screen. Exactly one
// field is non-nil, matching Snapshot.ScreenKind; plain screens
// (SHOP_ROOM, COMPLETE, NONE) have no detail struct at all.
type Screen struct {
	Event        *EventScreen
	Chest        *ChestScreen
	Rest         *RestScreen
	CardReward   *CardRewardScreen
	CombatReward *CombatRewardScreen
	Map          *MapScreen
	BossReward   *BossRewardScreen
	Shop         *ShopScreen
	Grid         *GridScreen
	HandSelect   *HandSelectScreen
	GameOver     *GameOverScreen
}

type EventOption struct {
	Text        string
	Label       string
	Disabled    bool
	ChoiceIndex int
}

type EventScreen struct {
	Name     string
	EventID  string
	BodyText string
	Options  []EventOption
}

type ChestScreen struct {
	Kind ChestKind
	Open bool
}

type RestScreen struct {
	HasRested bool
	Options   []RestOption
}

type CardRewardScreen struct {
	Cards   []Card
	CanBowl bool
	CanSkip bool
}

// CombatReward is one claimable item on the combat reward screen.
type CombatReward struct {
	Kind   RewardKind
	Gold   int
	Relic  *Relic
	Potion *Potion
	Link   *Relic
}

type CombatRewardScreen struct {
	Rewards []CombatReward
}

type MapScreen struct {
	CurrentNode   *MapNode
	NextNodes     []MapNode
	BossAvailable bool
	FirstFloor    bool
}

type BossRewardScreen struct {
	Relics []Relic
}

type ShopScreen struct {
	Cards          []Card
	Relics         []Relic
	Potions        []Potion
	PurgeAvailable bool
	PurgeCost      int
}

type GridScreen struct {
	Cards         []Card
	SelectedCards []Card
	NumCards      int
	AnyNumber     bool
	ConfirmUp     bool
	ForUpgrade    bool
	ForTransform  bool
	ForPurge      bool
}

type HandSelectScreen struct {
	Cards         []Card
	SelectedCards []Card
	NumCards      int
	CanPickZero   bool
}

type GameOverScreen struct {
	Score   int
	Victory bool
}

func (s Screen) clone() Screen {
	out := s
	if s.Event != nil {
		ev := *s.Event
		ev.Options = append([]EventOption{}, s.Event.Options...)
		out.Event = &ev
	}
	if s.Chest != nil {
		ch := *s.Chest
		out.Chest = &ch
	}
	if s.Rest != nil {
		r := *s.Rest
		r.Options = append([]RestOption{}, s.Rest.Options...)
		out.Rest = &r
	}
	if s.CardReward != nil {
		cr := *s.CardReward
		cr.Cards = CopyCards(s.CardReward.Cards)
		out.CardReward = &cr
	}
	if s.CombatReward != nil {
		cr := *s.CombatReward
		cr.Rewards = append([]CombatReward{}, s.CombatReward.Rewards...)
		out.CombatReward = &cr
	}
	if s.Map != nil {
		m := *s.Map
		if s.Map.CurrentNode != nil {
			cur := *s.Map.CurrentNode
			cur.Children = append([]MapCoord{}, cur.Children...)
			m.CurrentNode = &cur
		}
		m.NextNodes = append([]MapNode{}, s.Map.NextNodes...)
		for i := range m.NextNodes {
			m.NextNodes[i].Children = append([]MapCoord{}, m.NextNodes[i].Children...)
		}
		out.Map = &m
	}
	if s.BossReward != nil {
		br := *s.BossReward
		br.Relics = append([]Relic{}, s.BossReward.Relics...)
		out.BossReward = &br
	}
	if s.Shop != nil {
		sh := *s.Shop
		sh.Cards = CopyCards(s.Shop.Cards)
		sh.Relics = append([]Relic{}, s.Shop.Relics...)
		sh.Potions = append([]Potion{}, s.Shop.Potions...)
		out.Shop = &sh
	}
	if s.Grid != nil {
		gr := *s.Grid
		gr.Cards = CopyCards(s.Grid.Cards)
		gr.SelectedCards = CopyCards(s.Grid.SelectedCards)
		out.Grid = &gr
	}
	if s.HandSelect != nil {
		hs := *s.HandSelect
		hs.Cards = CopyCards(s.HandSelect.Cards)
		hs.SelectedCards = CopyCards(s.HandSelect.SelectedCards)
		out.HandSelect = &hs
	}
	if s.GameOver != nil {
		gg := *s.GameOver
		out.GameOver = &gg
	}
	return out
}
