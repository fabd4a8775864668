package spire

import "testing"

func combatSnapshot() *Snapshot {
	return &Snapshot{
		Seq:       7,
		RoomPhase: RoomPhaseCombat,
		InCombat:  true,
		Player:    &Player{MaxHP: 75, CurrentHP: 68, Energy: 3},
		Monsters: []Monster{
			{ID: "JawWorm", CurrentHP: 30, Intent: IntentAttack},
			{ID: "Cultist", CurrentHP: 48, Intent: IntentBuff},
		},
		Hand: []Card{
			{ID: "Strike_R", Name: "Strike", Type: CardTypeAttack, UUID: "u1", Cost: 1, HasTarget: true, IsPlayable: true},
			{ID: "Defend_R", Name: "Defend", Type: CardTypeSkill, UUID: "u2", Cost: 1, IsPlayable: true},
		},
		Commands: CommandSet{Play: true, End: true},
	}
}

func countKind(actions []Action, kind ActionKind) int {
	n := 0
	for _, a := range actions {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

func TestLegalActions_TargetedCardFansOutPerMonster(t *testing.T) {
	snap := combatSnapshot()
	actions := LegalActions(snap)
	// Strike x2 targets + Defend + EndTurn.
	if got := countKind(actions, ActionKindPlayCard); got != 3 {
		t.Fatalf("expected 3 play actions, got %d: %+v", got, actions)
	}
	if got := countKind(actions, ActionKindEndTurn); got != 1 {
		t.Fatalf("expected 1 end turn, got %d", got)
	}
	for _, a := range actions {
		if a.Snapshot != snap.Seq {
			t.Fatalf("action not stamped with snapshot seq: %+v", a)
		}
	}
}

func TestLegalActions_EnergyGatesCardPlays(t *testing.T) {
	snap := combatSnapshot()
	snap.Player.Energy = 0
	actions := LegalActions(snap)
	if got := countKind(actions, ActionKindPlayCard); got != 0 {
		t.Fatalf("no card should be payable at 0 energy, got %d plays", got)
	}
	if got := countKind(actions, ActionKindEndTurn); got != 1 {
		t.Fatal("end turn must remain available")
	}
}

func TestLegalActions_EnergyCheckedPerCard(t *testing.T) {
	snap := combatSnapshot()
	snap.Monsters = snap.Monsters[:1]
	snap.Hand = []Card{
		{ID: "Strike_R", Name: "Strike", Type: CardTypeAttack, UUID: "u1", Cost: 1, HasTarget: true, IsPlayable: true},
		{ID: "Fireball", Name: "Fireball", Type: CardTypeAttack, UUID: "u2", Cost: 2, HasTarget: true, IsPlayable: true},
	}

	snap.Player.Energy = 3
	plays := map[int]bool{}
	for _, a := range LegalActions(snap) {
		if a.Kind == ActionKindPlayCard {
			plays[a.CardIndex] = true
		}
	}
	if !plays[0] || !plays[1] {
		t.Fatalf("both cards payable at 3 energy, got %v", plays)
	}

	snap.Player.Energy = 1
	plays = map[int]bool{}
	for _, a := range LegalActions(snap) {
		if a.Kind == ActionKindPlayCard {
			plays[a.CardIndex] = true
		}
	}
	if !plays[0] || plays[1] {
		t.Fatalf("only the 1-cost card payable at 1 energy, got %v", plays)
	}
}

func TestLegalActions_XCostCardAlwaysPayable(t *testing.T) {
	snap := combatSnapshot()
	snap.Player.Energy = 0
	snap.Hand = []Card{{ID: "Whirlwind", Name: "Whirlwind", Type: CardTypeAttack, UUID: "u3", Cost: -1, IsPlayable: true}}
	actions := LegalActions(snap)
	if got := countKind(actions, ActionKindPlayCard); got != 1 {
		t.Fatalf("X-cost card must stay playable at 0 energy, got %d plays", got)
	}
}

func TestLegalActions_TargetedCardWithNoTargetsIsExcluded(t *testing.T) {
	snap := combatSnapshot()
	for i := range snap.Monsters {
		snap.Monsters[i].IsGone = true
	}
	actions := LegalActions(snap)
	for _, a := range actions {
		if a.Kind == ActionKindPlayCard && a.CardIndex == 0 {
			t.Fatalf("targeted card offered with nothing to hit: %+v", a)
		}
	}
	// The untargeted Defend is still fine.
	if got := countKind(actions, ActionKindPlayCard); got != 1 {
		t.Fatalf("expected only the untargeted play, got %d", got)
	}
}

func TestLegalActions_HalfDeadMonsterIsNotATarget(t *testing.T) {
	snap := combatSnapshot()
	snap.Monsters[0].HalfDead = true
	var targets []int
	for _, a := range LegalActions(snap) {
		if a.Kind == ActionKindPlayCard && a.CardIndex == 0 {
			targets = append(targets, a.TargetIndex)
		}
	}
	if len(targets) != 1 || targets[0] != 1 {
		t.Fatalf("expected only monster 1 targetable, got %v", targets)
	}
}

func TestLegalActions_PotionSlotIsSkipped(t *testing.T) {
	snap := combatSnapshot()
	snap.Commands.Potion = true
	snap.Potions = []Potion{
		{ID: PotionSlotID, Name: "Potion Slot"},
		{ID: "Fire Potion", Name: "Fire Potion", CanUse: true, CanDiscard: true, RequiresTarget: true},
	}
	actions := LegalActions(snap)
	for _, a := range actions {
		if (a.Kind == ActionKindUsePotion || a.Kind == ActionKindDiscardPotion) && a.PotionIndex == 0 {
			t.Fatalf("empty slot offered as a potion action: %+v", a)
		}
	}
	if got := countKind(actions, ActionKindUsePotion); got != 2 {
		t.Fatalf("expected 2 targeted uses, got %d", got)
	}
	if got := countKind(actions, ActionKindDiscardPotion); got != 1 {
		t.Fatalf("expected 1 discard, got %d", got)
	}
}

func TestLegalActions_ChoicesEnumerateTheList(t *testing.T) {
	snap := &Snapshot{
		Seq:             3,
		ScreenKind:      ScreenKindEvent,
		ChoiceAvailable: true,
		ChoiceList:      []string{"banana", "donut", "leave"},
		Commands:        CommandSet{Cancel: true},
	}
	actions := LegalActions(snap)
	if got := countKind(actions, ActionKindChoose); got != 3 {
		t.Fatalf("expected one choose per entry, got %d", got)
	}
	if got := countKind(actions, ActionKindCancel); got != 1 {
		t.Fatalf("expected cancel, got %d", got)
	}
}

func TestLegalActions_NeverEmptyOnInteractiveScreens(t *testing.T) {
	// No commands at all: the catalog must still produce a fallback.
	idle := &Snapshot{Seq: 1, ScreenKind: ScreenKindNone}
	actions := LegalActions(idle)
	if len(actions) != 1 || actions[0].Kind != ActionKindWait {
		t.Fatalf("expected a lone Wait fallback, got %+v", actions)
	}

	stuckCombat := &Snapshot{Seq: 2, InCombat: true, RoomPhase: RoomPhaseCombat}
	actions = LegalActions(stuckCombat)
	if len(actions) != 1 || actions[0].Kind != ActionKindEndTurn {
		t.Fatalf("expected a lone EndTurn fallback in combat, got %+v", actions)
	}
}

func TestLegalActions_TerminalScreensYieldNil(t *testing.T) {
	over := &Snapshot{Seq: 9, ScreenKind: ScreenKindGameOver, Commands: CommandSet{Proceed: true}}
	if actions := LegalActions(over); actions != nil {
		t.Fatalf("terminal screen must yield nil, got %+v", actions)
	}
}
