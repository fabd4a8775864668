package spire

// CommandSet records which top-level bridge commands the current state
// accepts. Proceed and Cancel fold together the synonym commands the
// bridge uses on different screens (confirm/leave/return/skip).
type CommandSet struct {
	End     bool
	Potion  bool
	Play    bool
	Proceed bool
	Cancel  bool
	Start   bool
	State   bool
}

// Snapshot is one fully reconciled instant of game state. Snapshots are
// never mutated after the synchronizer publishes them; every reconcile
// builds a new one. Numeric fields the bridge omitted from a full dump
// hold Unknown, omitted slices stay nil.
type Snapshot struct {
	// Seq is the arrival order stamp. Actions remember the Seq they were
	// derived from so stale ones can be rejected.
	Seq uint64

	// Run state
	Class          string
	AscensionLevel int
	CurrentHP      int
	MaxHP          int
	Floor          int
	Act            int
	Gold           int
	Seed           int64
	ActBoss        string
	Relics         []Relic
	Deck           []Card
	Potions        []Potion
	Map            *MapGraph

	// Screen context
	ScreenKind      ScreenKind
	ScreenUp        bool
	Screen          Screen
	RoomPhase       RoomPhase
	RoomType        string
	ChoiceAvailable bool
	ChoiceList      []string
	CurrentAction   string

	// Combat state, populated only while RoomPhase is COMBAT
	InCombat               bool
	Player                 *Player
	Monsters               []Monster
	DrawPile               []Card
	DiscardPile            []Card
	ExhaustPile            []Card
	Hand                   []Card
	Limbo                  []Card
	CardInPlay             *Card
	Turn                   int
	CardsDiscardedThisTurn int

	Commands CommandSet
}

// Clone returns a deep copy with no shared mutable sub-structure, so the
// synchronizer can derive the next snapshot without touching a published
// one.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.Relics = append([]Relic{}, s.Relics...)
	out.Deck = CopyCards(s.Deck)
	out.Potions = append([]Potion{}, s.Potions...)
	out.Map = s.Map.Clone()
	out.Screen = s.Screen.clone()
	if s.ChoiceList != nil {
		out.ChoiceList = append([]string{}, s.ChoiceList...)
	}
	out.Player = copyPlayer(s.Player)
	out.Monsters = copyMonsters(s.Monsters)
	out.DrawPile = CopyCards(s.DrawPile)
	out.DiscardPile = CopyCards(s.DiscardPile)
	out.ExhaustPile = CopyCards(s.ExhaustPile)
	out.Hand = CopyCards(s.Hand)
	out.Limbo = CopyCards(s.Limbo)
	if s.CardInPlay != nil {
		c := *s.CardInPlay
		out.CardInPlay = &c
	}
	return &out
}

// Terminal reports whether no further interaction is possible.
func (s *Snapshot) Terminal() bool { return s.ScreenKind.Terminal() }

// RealPotions returns held potions, skipping empty slots.
func (s *Snapshot) RealPotions() []Potion {
	var out []Potion
	for _, p := range s.Potions {
		if !p.IsSlot() {
			out = append(out, p)
		}
	}
	return out
}

// PotionsFull reports whether no empty potion slot remains.
func (s *Snapshot) PotionsFull() bool {
	for _, p := range s.Potions {
		if p.IsSlot() {
			return false
		}
	}
	return true
}

// TargetableMonsters returns the indices of monsters a card could target
// right now, in position order.
func (s *Snapshot) TargetableMonsters() []int {
	var out []int
	for i, m := range s.Monsters {
		if m.Targetable() {
			out = append(out, i)
		}
	}
	return out
}

// IncomingDamage sums the damage declared by every live monster's intent
// for this turn. Attacks with hidden numbers are budgeted at 5 per act.
func (s *Snapshot) IncomingDamage() int {
	fallback := 5 * s.Act
	if s.Act <= 0 {
		fallback = 5
	}
	total := 0
	for _, m := range s.Monsters {
		if !m.Targetable() {
			continue
		}
		total += m.AttackDamage(fallback)
	}
	return total
}

// CountInDeck returns how many copies of the named card the deck holds.
func (s *Snapshot) CountInDeck(cardID string) int {
	n := 0
	for _, c := range s.Deck {
		if c.ID == cardID {
			n++
		}
	}
	return n
}
