package statesync

import (
	"errors"
	"reflect"
	"testing"

	"spirebot/protocol"
	"spirebot/spire"
)

func decode(t *testing.T, line string) *protocol.Envelope {
	t.Helper()
	env, err := protocol.DecodeEnvelope([]byte(line))
	if err != nil {
		t.Fatalf("DecodeEnvelope err: %v", err)
	}
	return env
}

const fullCombatDump = `{
	"ready_for_command": true,
	"in_game": true,
	"partial": false,
	"game_state": {
		"class": "IRONCLAD",
		"current_hp": 68,
		"max_hp": 75,
		"floor": 1,
		"act": 1,
		"gold": 99,
		"screen_type": "NONE",
		"is_screen_up": false,
		"room_phase": "COMBAT",
		"room_type": "MonsterRoom",
		"combat_state": {
			"player": {"max_hp": 75, "current_hp": 68, "block": 0, "energy": 3},
			"monsters": [
				{"id": "JawWorm", "name": "Jaw Worm", "max_hp": 44, "current_hp": 30, "intent": "ATTACK", "move_adjusted_damage": 11, "move_hits": 1},
				{"id": "Cultist", "name": "Cultist", "max_hp": 50, "current_hp": 48, "intent": "BUFF"}
			],
			"hand": [
				{"id": "Strike_R", "name": "Strike", "type": "ATTACK", "rarity": "BASIC", "uuid": "u-strike", "cost": 1, "has_target": true, "is_playable": true},
				{"id": "Defend_R", "name": "Defend", "type": "SKILL", "rarity": "BASIC", "uuid": "u-defend", "cost": 1, "is_playable": true}
			],
			"turn": 1
		}
	},
	"available_commands": ["play", "end", "potion", "state"]
}`

func TestReconcile_FullDump_BuildsCombatSnapshot(t *testing.T) {
	s := New()
	snap, err := s.Reconcile(decode(t, fullCombatDump))
	if err != nil {
		t.Fatalf("Reconcile err: %v", err)
	}
	if snap.Seq != 1 {
		t.Fatalf("expected seq 1, got %d", snap.Seq)
	}
	if !snap.InCombat {
		t.Fatal("expected combat snapshot")
	}
	if snap.Player == nil || snap.Player.Energy != 3 {
		t.Fatalf("player energy not carried over: %+v", snap.Player)
	}
	if len(snap.Monsters) != 2 || snap.Monsters[0].CurrentHP != 30 {
		t.Fatalf("monsters not carried over: %+v", snap.Monsters)
	}
	if len(snap.Hand) != 2 || snap.Hand[0].Name != "Strike" {
		t.Fatalf("hand not carried over: %+v", snap.Hand)
	}
	if !snap.Commands.Play || !snap.Commands.End || snap.Commands.Proceed {
		t.Fatalf("commands wrong: %+v", snap.Commands)
	}
}

func TestReconcile_FullDump_AbsentFieldsDefaultToUnknown(t *testing.T) {
	s := New()
	snap, err := s.Reconcile(decode(t, `{"partial": false, "game_state": {"screen_type": "NONE"}}`))
	if err != nil {
		t.Fatalf("Reconcile err: %v", err)
	}
	if snap.CurrentHP != spire.Unknown || snap.Gold != spire.Unknown || snap.Floor != spire.Unknown {
		t.Fatalf("absent numerics must be Unknown, got hp=%d gold=%d floor=%d", snap.CurrentHP, snap.Gold, snap.Floor)
	}
	if snap.Deck != nil || snap.Relics != nil {
		t.Fatal("absent collections must stay nil")
	}
	if snap.Turn != spire.Unknown {
		t.Fatalf("turn must be Unknown outside combat, got %d", snap.Turn)
	}
}

func TestReconcile_FullDump_IsIdempotent(t *testing.T) {
	// Feeding the same dump twice yields observationally equal
	// snapshots; only the arrival stamp moves.
	s := New()
	first, err := s.Reconcile(decode(t, fullCombatDump))
	if err != nil {
		t.Fatalf("Reconcile err: %v", err)
	}
	second, err := s.Reconcile(decode(t, fullCombatDump))
	if err != nil {
		t.Fatalf("Reconcile err: %v", err)
	}
	a, b := first.Clone(), second.Clone()
	a.Seq, b.Seq = 0, 0
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("re-reconciled dump diverged:\n%+v\nvs\n%+v", a, b)
	}
}

func TestReconcile_FullDump_IsSelfContained(t *testing.T) {
	// A full dump after rich prior state must not inherit anything.
	s := New()
	if _, err := s.Reconcile(decode(t, fullCombatDump)); err != nil {
		t.Fatalf("seed reconcile err: %v", err)
	}
	snap, err := s.Reconcile(decode(t, `{"partial": false, "game_state": {"screen_type": "NONE", "gold": 120}}`))
	if err != nil {
		t.Fatalf("Reconcile err: %v", err)
	}
	if snap.Gold != 120 {
		t.Fatalf("expected gold 120, got %d", snap.Gold)
	}
	if snap.CurrentHP != spire.Unknown {
		t.Fatalf("hp must not be inherited across a full dump, got %d", snap.CurrentHP)
	}
	if snap.InCombat || snap.Player != nil || snap.Hand != nil {
		t.Fatal("combat state must not be inherited across a full dump")
	}
}

func TestReconcile_Partial_InheritsUnspecifiedFields(t *testing.T) {
	s := New()
	if _, err := s.Reconcile(decode(t, fullCombatDump)); err != nil {
		t.Fatalf("seed reconcile err: %v", err)
	}
	snap, err := s.Reconcile(decode(t, `{
		"partial": true,
		"game_state": {
			"screen_type": "NONE",
			"combat_state": {
				"player": {"max_hp": 75, "current_hp": 60, "block": 5, "energy": 2},
				"monsters": [
					{"id": "JawWorm", "name": "Jaw Worm", "max_hp": 44, "current_hp": 19, "intent": "ATTACK", "move_adjusted_damage": 11, "move_hits": 1},
					{"id": "Cultist", "name": "Cultist", "max_hp": 50, "current_hp": 48, "intent": "BUFF"}
				]
			}
		}
	}`))
	if err != nil {
		t.Fatalf("Reconcile err: %v", err)
	}
	if snap.Seq != 2 {
		t.Fatalf("expected seq 2, got %d", snap.Seq)
	}
	if snap.Player.CurrentHP != 60 || snap.Monsters[0].CurrentHP != 19 {
		t.Fatal("explicit fields must be overwritten")
	}
	if snap.Gold != 99 || snap.Class != "IRONCLAD" {
		t.Fatalf("unspecified fields must be inherited, got gold=%d class=%q", snap.Gold, snap.Class)
	}
	if len(snap.Hand) != 2 {
		t.Fatalf("hand must be inherited when absent from the update, got %d cards", len(snap.Hand))
	}
	if !snap.Commands.Play {
		t.Fatal("commands must be inherited when absent from the update")
	}
}

func TestReconcile_Partial_DoesNotMutatePriorSnapshot(t *testing.T) {
	s := New()
	first, err := s.Reconcile(decode(t, fullCombatDump))
	if err != nil {
		t.Fatalf("seed reconcile err: %v", err)
	}
	_, err = s.Reconcile(decode(t, `{
		"partial": true,
		"game_state": {
			"screen_type": "NONE",
			"current_hp": 1,
			"combat_state": {
				"monsters": [
					{"id": "JawWorm", "name": "Jaw Worm", "max_hp": 44, "current_hp": 1},
					{"id": "Cultist", "name": "Cultist", "max_hp": 50, "current_hp": 1}
				]
			}
		}
	}`))
	if err != nil {
		t.Fatalf("Reconcile err: %v", err)
	}
	if first.CurrentHP != 68 || first.Monsters[0].CurrentHP != 30 {
		t.Fatal("published snapshot was mutated by a later partial")
	}
}

func TestReconcile_MissingDiscriminator_IsProtocolError(t *testing.T) {
	s := New()
	_, err := s.Reconcile(decode(t, `{"game_state": {"screen_type": "NONE", "gold": 10}}`))
	var perr protocol.ProtocolError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProtocolError, got %v", err)
	}
	if s.Current() != nil {
		t.Fatal("failed reconcile must not publish a snapshot")
	}
}

func TestReconcile_PartialWithoutPrior_IsProtocolError(t *testing.T) {
	s := New()
	_, err := s.Reconcile(decode(t, `{"partial": true, "game_state": {"screen_type": "NONE"}}`))
	var perr protocol.ProtocolError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProtocolError, got %v", err)
	}
}

func TestReconcile_MonsterCountMismatch_ForcesResync(t *testing.T) {
	s := New()
	if _, err := s.Reconcile(decode(t, fullCombatDump)); err != nil {
		t.Fatalf("seed reconcile err: %v", err)
	}
	mismatch := `{
		"partial": true,
		"game_state": {
			"screen_type": "NONE",
			"combat_state": {
				"monsters": [{"id": "JawWorm", "name": "Jaw Worm", "max_hp": 44, "current_hp": 19}]
			}
		}
	}`
	_, err := s.Reconcile(decode(t, mismatch))
	var desync *DesyncError
	if !errors.As(err, &desync) {
		t.Fatalf("expected DesyncError, got %v", err)
	}
	if desync.ExpectedMonsters != 2 || desync.GotMonsters != 1 {
		t.Fatalf("wrong desync counts: %+v", desync)
	}
	if !s.ResyncPending() {
		t.Fatal("desync must arm the forced resync")
	}

	// A second mismatched partial before the full dump is fatal.
	_, err = s.Reconcile(decode(t, mismatch))
	var perr protocol.ProtocolError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProtocolError escalation, got %v", err)
	}

	// The full dump clears the pending flag and repairs state.
	snap, err := s.Reconcile(decode(t, fullCombatDump))
	if err != nil {
		t.Fatalf("resync reconcile err: %v", err)
	}
	if s.ResyncPending() {
		t.Fatal("full dump must clear the pending resync")
	}
	if len(snap.Monsters) != 2 {
		t.Fatalf("resynced roster wrong: %d monsters", len(snap.Monsters))
	}
}

func TestReconcile_UnknownScreenType_IsProtocolError(t *testing.T) {
	s := New()
	_, err := s.Reconcile(decode(t, `{"partial": false, "game_state": {"screen_type": "HOLOGRAM"}}`))
	var perr protocol.ProtocolError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProtocolError, got %v", err)
	}
}

func TestReconcile_ScreenChangeWithoutDetail_ClearsStaleScreen(t *testing.T) {
	s := New()
	if _, err := s.Reconcile(decode(t, `{
		"partial": false,
		"game_state": {
			"screen_type": "EVENT",
			"room_phase": "EVENT",
			"screen_state": {"event_name": "Big Fish", "options": [{"text": "banana", "choice_index": 0}]},
			"choice_list": ["banana", "donut"]
		}
	}`)); err != nil {
		t.Fatalf("seed reconcile err: %v", err)
	}
	snap, err := s.Reconcile(decode(t, `{"partial": true, "game_state": {"screen_type": "MAP"}}`))
	if err != nil {
		t.Fatalf("Reconcile err: %v", err)
	}
	if snap.ScreenKind != spire.ScreenKindMap {
		t.Fatalf("expected MAP screen, got %s", snap.ScreenKind)
	}
	if snap.Screen.Event != nil {
		t.Fatal("stale event detail must not survive a screen change")
	}
	if snap.ChoiceAvailable {
		t.Fatal("stale choice list must not survive a screen change")
	}
}

func TestReconcile_CombatEnd_ClearsCombatState(t *testing.T) {
	s := New()
	if _, err := s.Reconcile(decode(t, fullCombatDump)); err != nil {
		t.Fatalf("seed reconcile err: %v", err)
	}
	snap, err := s.Reconcile(decode(t, `{
		"partial": true,
		"game_state": {"screen_type": "COMBAT_REWARD", "room_phase": "COMPLETE", "choice_list": ["gold"]}
	}`))
	if err != nil {
		t.Fatalf("Reconcile err: %v", err)
	}
	if snap.InCombat {
		t.Fatal("room_phase COMPLETE must end combat")
	}
	if snap.Player != nil || snap.Monsters != nil || snap.Hand != nil {
		t.Fatal("combat state must be cleared when combat ends")
	}
	if snap.Turn != spire.Unknown {
		t.Fatalf("turn must reset to Unknown, got %d", snap.Turn)
	}
}
