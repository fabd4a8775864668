package spire

// Card is one card instance. ID/Name/Type/Rarity are reference data the
// bridge repeats on every dump; UUID distinguishes copies of the same
// card, and the remaining fields are per-instance state owned by
// whichever pile holds the card.
type Card struct {
	ID       string
	Name     string
	Type     CardType
	Rarity   CardRarity
	UUID     string
	Upgrades int
	Cost     int
	HasTarget  bool
	IsPlayable bool
	Exhausts   bool
	Misc       int
	Price      int
}

func (c Card) Upgraded() bool { return c.Upgrades > 0 }

// Relic 遗物
type Relic struct {
	ID      string
	Name    string
	Counter int
	Price   int
}

// Potion 药水
type Potion struct {
	ID             string
	Name           string
	CanUse         bool
	CanDiscard     bool
	RequiresTarget bool
	Price          int
}

// PotionSlotID is the placeholder the bridge reports for an empty slot.
const PotionSlotID = "Potion Slot"

func (p Potion) IsSlot() bool { return p.ID == PotionSlotID }

// Power is one status effect on a player or monster.
type Power struct {
	ID     string
	Name   string
	Amount int
}

// Orb is one Defect orb slot.
type Orb struct {
	ID            string
	Name          string
	EvokeAmount   int
	PassiveAmount int
}

// CopyCards returns an independent copy of a pile.
func CopyCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	return append([]Card{}, cards...)
}
