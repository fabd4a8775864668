package agent

import (
	"testing"

	"spirebot/spire"
)

func choiceSnapshot(kind spire.ScreenKind, choices []string) *spire.Snapshot {
	return &spire.Snapshot{
		Seq:             4,
		ScreenKind:      kind,
		ScreenUp:        true,
		ChoiceAvailable: true,
		ChoiceList:      choices,
		CurrentHP:       60,
		MaxHP:           80,
		Floor:           5,
		Act:             1,
		Commands:        spire.CommandSet{Proceed: true, Cancel: true},
	}
}

func TestHandleScreen_CardReward_PicksByPriority(t *testing.T) {
	snap := choiceSnapshot(spire.ScreenKindCardReward, []string{"Cleave", "Bash", "Anger"})
	snap.Screen.CardReward = &spire.CardRewardScreen{
		Cards: []spire.Card{
			{ID: "Cleave", Name: "Cleave"},
			{ID: "Bash", Name: "Bash"},
			{ID: "Anger", Name: "Anger"},
		},
		CanSkip: true,
	}
	h := NewHeuristic(DefaultPreferences())
	action := selectAction(t, h, snap)
	if action.Kind != spire.ActionKindChoose || action.ChoiceName != "Bash" {
		t.Fatalf("expected Bash by priority, got %+v", action)
	}
}

func TestHandleScreen_CardReward_SkipsUnwantedCards(t *testing.T) {
	snap := choiceSnapshot(spire.ScreenKindCardReward, []string{"Cleave", "Anger"})
	snap.Screen.CardReward = &spire.CardRewardScreen{
		Cards: []spire.Card{
			{ID: "Cleave", Name: "Cleave"},
			{ID: "Anger", Name: "Anger"},
		},
		CanSkip: true,
	}
	h := NewHeuristic(DefaultPreferences())
	action := selectAction(t, h, snap)
	if action.Kind != spire.ActionKindCancel {
		t.Fatalf("expected skip of off-priority cards, got %+v", action)
	}
	if !h.skippedCards {
		t.Fatal("skip must be remembered for the reward screen")
	}
}

func TestHandleScreen_CombatReward_FollowsRewardPriority(t *testing.T) {
	snap := choiceSnapshot(spire.ScreenKindCombatReward, []string{"gold", "potion", "relic"})
	snap.Screen.CombatReward = &spire.CombatRewardScreen{Rewards: []spire.CombatReward{
		{Kind: spire.RewardKindGold, Gold: 25},
		{Kind: spire.RewardKindPotion, Potion: &spire.Potion{ID: "Fire Potion"}},
		{Kind: spire.RewardKindRelic, Relic: &spire.Relic{ID: "Anchor"}},
	}}
	h := NewHeuristic(DefaultPreferences())
	action := selectAction(t, h, snap)
	// Default priority: RELIC > POTION > GOLD.
	if action.Kind != spire.ActionKindChoose || action.ChoiceIndex != 2 {
		t.Fatalf("expected the relic first, got %+v", action)
	}
}

func TestHandleScreen_CombatReward_SkipsPotionsWhenFull(t *testing.T) {
	snap := choiceSnapshot(spire.ScreenKindCombatReward, []string{"potion", "gold"})
	snap.Potions = []spire.Potion{{ID: "Block Potion"}, {ID: "Fire Potion"}}
	snap.Screen.CombatReward = &spire.CombatRewardScreen{Rewards: []spire.CombatReward{
		{Kind: spire.RewardKindPotion, Potion: &spire.Potion{ID: "Fire Potion"}},
		{Kind: spire.RewardKindGold, Gold: 25},
	}}
	h := NewHeuristic(DefaultPreferences())
	action := selectAction(t, h, snap)
	if action.Kind != spire.ActionKindChoose || action.ChoiceIndex != 1 {
		t.Fatalf("expected gold with full potion belt, got %+v", action)
	}
}

func TestHandleScreen_Rest_HealsWhenBadlyHurt(t *testing.T) {
	snap := choiceSnapshot(spire.ScreenKindRest, []string{"rest", "smith"})
	snap.CurrentHP = 20
	snap.Screen.Rest = &spire.RestScreen{Options: []spire.RestOption{spire.RestOptionRest, spire.RestOptionSmith}}
	h := NewHeuristic(DefaultPreferences())
	action := selectAction(t, h, snap)
	if action.ChoiceName != "rest" {
		t.Fatalf("expected rest at 20/80 hp, got %+v", action)
	}
}

func TestHandleScreen_Rest_SmithsWhenHealthy(t *testing.T) {
	snap := choiceSnapshot(spire.ScreenKindRest, []string{"rest", "smith"})
	snap.CurrentHP = 78
	snap.Screen.Rest = &spire.RestScreen{Options: []spire.RestOption{spire.RestOptionRest, spire.RestOptionSmith}}
	h := NewHeuristic(DefaultPreferences())
	action := selectAction(t, h, snap)
	if action.ChoiceName != "smith" {
		t.Fatalf("expected smith at 78/80 hp, got %+v", action)
	}
}

func TestHandleScreen_GreedyEventTakesTheLastOption(t *testing.T) {
	snap := choiceSnapshot(spire.ScreenKindEvent, []string{"offer", "refuse", "attack"})
	snap.Screen.Event = &spire.EventScreen{
		Name:    "Masked Bandits",
		EventID: "Masked Bandits",
		Options: []spire.EventOption{{Text: "offer"}, {Text: "refuse"}, {Text: "attack"}},
	}
	h := NewHeuristic(DefaultPreferences())
	action := selectAction(t, h, snap)
	if action.Kind != spire.ActionKindChoose || action.ChoiceIndex != 2 {
		t.Fatalf("expected the last option of a greedy event, got %+v", action)
	}
}

func TestHandleScreen_Grid_UpgradePicksBestCard(t *testing.T) {
	snap := choiceSnapshot(spire.ScreenKindGrid, []string{"Strike", "Bash", "Defend"})
	snap.Screen.Grid = &spire.GridScreen{
		Cards: []spire.Card{
			{ID: "Strike_R", Name: "Strike"},
			{ID: "Bash", Name: "Bash"},
			{ID: "Defend_R", Name: "Defend"},
		},
		ForUpgrade: true,
		NumCards:   1,
	}
	h := NewHeuristic(DefaultPreferences())
	action := selectAction(t, h, snap)
	if action.ChoiceIndex != 1 {
		t.Fatalf("expected Bash for the upgrade, got %+v", action)
	}
}

func TestHandleScreen_HandSelect_GivesUpWorstCards(t *testing.T) {
	snap := choiceSnapshot(spire.ScreenKindHandSelect, []string{"Bash", "Ascender's Bane"})
	snap.Screen.HandSelect = &spire.HandSelectScreen{
		Cards: []spire.Card{
			{ID: "Bash", Name: "Bash"},
			{ID: "AscendersBane", Name: "Ascender's Bane"},
		},
		NumCards: 1,
	}
	h := NewHeuristic(DefaultPreferences())
	action := selectAction(t, h, snap)
	if action.ChoiceIndex != 1 {
		t.Fatalf("expected the off-priority card to be given up, got %+v", action)
	}
}

func TestHandleScreen_ShopRoom_VisitsOnceThenLeaves(t *testing.T) {
	h := NewHeuristic(DefaultPreferences())
	snap := choiceSnapshot(spire.ScreenKindShopRoom, []string{"shop"})
	first := selectAction(t, h, snap)
	if first.ChoiceName != "shop" {
		t.Fatalf("expected to enter the shop, got %+v", first)
	}
	second := selectAction(t, h, snap)
	if second.Kind != spire.ActionKindProceed {
		t.Fatalf("expected to leave after the visit, got %+v", second)
	}
}
