package agent

import (
	"strings"

	"spirebot/spire"
)

// cardProfile is the static combat profile of a known card: what one
// play is worth in damage and block. The bridge does not transmit these
// numbers, so the heuristic carries a table of the common ones. Unknown
// cards get a zero profile and are judged by type alone.
type cardProfile struct {
	Damage       int
	Block        int
	UpgradeBonus int
	AOE          bool
	Defensive    bool
}

var cardProfiles = map[string]cardProfile{
	// Starters
	"Strike":     {Damage: 6, UpgradeBonus: 3},
	"Defend":     {Block: 5, UpgradeBonus: 3, Defensive: true},
	"Bash":       {Damage: 8, UpgradeBonus: 2},
	"Neutralize": {Damage: 3, UpgradeBonus: 1},
	"Survivor":   {Block: 8, UpgradeBonus: 3, Defensive: true},
	"Zap":        {},
	"Dualcast":   {},
	"Eruption":   {Damage: 9},
	"Vigilance":  {Block: 8, UpgradeBonus: 4, Defensive: true},

	// Common attacks
	"Anger":          {Damage: 6, UpgradeBonus: 2},
	"Cleave":         {Damage: 8, UpgradeBonus: 3, AOE: true},
	"Clothesline":    {Damage: 12, UpgradeBonus: 2},
	"Iron Wave":      {Damage: 5, Block: 5, UpgradeBonus: 2},
	"Pommel Strike":  {Damage: 9, UpgradeBonus: 1},
	"Twin Strike":    {Damage: 10, UpgradeBonus: 4},
	"Thunderclap":    {Damage: 4, UpgradeBonus: 3, AOE: true},
	"Dagger Throw":   {Damage: 9, UpgradeBonus: 3},
	"Poisoned Stab":  {Damage: 6, UpgradeBonus: 2},
	"Sweeping Beam":  {Damage: 6, UpgradeBonus: 3, AOE: true},
	"Ball Lightning": {Damage: 7, UpgradeBonus: 3},
	"Fireball":       {Damage: 9, UpgradeBonus: 5},

	// Common skills
	"Shrug It Off":   {Block: 8, UpgradeBonus: 3, Defensive: true},
	"Dodge and Roll": {Block: 4, UpgradeBonus: 2, Defensive: true},
	"Backflip":       {Block: 5, UpgradeBonus: 3, Defensive: true},
	"Leap":           {Block: 9, UpgradeBonus: 3, Defensive: true},
	"Cold Snap":      {Damage: 6, UpgradeBonus: 3},
}

func profileFor(c spire.Card) cardProfile {
	// Upgraded cards report "Name+" on the wire.
	name := strings.TrimSuffix(c.Name, "+")
	p, ok := cardProfiles[name]
	if !ok {
		// Fall back to type: attacks hit, skills are assumed defensive.
		switch c.Type {
		case spire.CardTypeAttack:
			return cardProfile{Damage: 5}
		case spire.CardTypeSkill:
			return cardProfile{Defensive: true}
		default:
			return cardProfile{}
		}
	}
	if c.Upgraded() {
		if p.Damage > 0 {
			p.Damage += p.UpgradeBonus
		}
		if p.Block > 0 {
			p.Block += p.UpgradeBonus
		}
	}
	return p
}
