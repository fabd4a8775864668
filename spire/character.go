package spire

// Player is the player's combat-only state. Run-level hp lives on the
// Snapshot; the bridge reports combat hp separately and they can differ
// mid-fight (e.g. Intangible).
type Player struct {
	MaxHP     int
	CurrentHP int
	Block     int
	Energy    int
	Powers    []Power
	Orbs      []Orb
}

// Monster is one enemy in the current combat. Identity across snapshots
// is positional: index i in Snapshot.Monsters refers to the same enemy
// for the whole combat, which is what lets the differ attribute hp and
// intent deltas.
type Monster struct {
	ID                 string
	Name               string
	MaxHP              int
	CurrentHP          int
	Block              int
	Intent             Intent
	HalfDead           bool
	IsGone             bool
	MoveID             int
	LastMoveID         int
	SecondLastMoveID   int
	MoveBaseDamage     int
	MoveAdjustedDamage int
	MoveHits           int
	Powers             []Power
}

// Targetable reports whether the monster can still be chosen as a card
// target this turn.
func (m Monster) Targetable() bool {
	return m.CurrentHP > 0 && !m.HalfDead && !m.IsGone
}

// AttackDamage returns the total damage the monster's declared move will
// deal this turn, or 0 when it does not intend an attack. Any attack
// with no reported damage numbers is still worth something; callers pass
// in a per-act budget as fallback.
func (m Monster) AttackDamage(fallback int) int {
	if !m.Intent.IsAttack() && m.Intent != IntentNone {
		return 0
	}
	if m.MoveAdjustedDamage > 0 {
		hits := m.MoveHits
		if hits <= 0 {
			hits = 1
		}
		return m.MoveAdjustedDamage * hits
	}
	return fallback
}

func copyPlayer(p *Player) *Player {
	if p == nil {
		return nil
	}
	out := *p
	out.Powers = append([]Power{}, p.Powers...)
	out.Orbs = append([]Orb{}, p.Orbs...)
	return &out
}

func copyMonsters(monsters []Monster) []Monster {
	if monsters == nil {
		return nil
	}
	out := append([]Monster{}, monsters...)
	for i := range out {
		out[i].Powers = append([]Power{}, out[i].Powers...)
	}
	return out
}
