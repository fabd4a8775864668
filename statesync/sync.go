// Package statesync reconciles the bridge's raw message stream into
// typed, immutable snapshots. It is the only writer on the snapshot
// path: downstream components read whatever it last published and never
// mutate it.
package statesync

import (
	"fmt"
	"log"

	"spirebot/protocol"
	"spirebot/spire"
)

// DesyncError reports a state mismatch detected mid-combat: the monster
// roster of a partial update no longer lines up with the snapshot it
// should extend. The caller is expected to request one full resync.
type DesyncError struct {
	ExpectedMonsters int
	GotMonsters      int
}

func (e *DesyncError) Error() string {
	return fmt.Sprintf("desync: combat has %d monsters, update describes %d", e.ExpectedMonsters, e.GotMonsters)
}

// Synchronizer owns the current snapshot and derives the next one from
// each inbound message. Single writer, no locking: published snapshots
// are immutable and the reference swap is the only shared state.
type Synchronizer struct {
	current *spire.Snapshot
	seq     uint64

	// resyncPending is set after a DesyncError and cleared by the next
	// full dump. A second desync while it is set means the forced
	// resync never arrived, which the synchronizer escalates.
	resyncPending bool
}

func New() *Synchronizer {
	return &Synchronizer{}
}

// Current returns the last published snapshot, nil before the first
// reconcile.
func (s *Synchronizer) Current() *spire.Snapshot { return s.current }

// ResyncPending reports whether a forced full dump has been requested
// and not yet seen.
func (s *Synchronizer) ResyncPending() bool { return s.resyncPending }

// Reconcile turns one inbound envelope into the next snapshot.
//
// The central contract: a full dump rebuilds every field from the
// message, defaulting anything absent to the Unknown sentinel (or nil),
// while a message marked partial inherits unspecified fields from the
// previous snapshot. A message that does not say which it is cannot be
// applied safely and fails with ProtocolError.
func (s *Synchronizer) Reconcile(env *protocol.Envelope) (*spire.Snapshot, error) {
	if env == nil {
		return nil, protocol.ProtocolError("nil envelope")
	}
	if env.Partial == nil {
		return nil, protocol.ProtocolError("message missing full/partial discriminator")
	}
	gs := env.GameState
	if gs == nil {
		return nil, protocol.ProtocolError("message missing game_state")
	}
	if gs.ScreenType == nil {
		return nil, protocol.ProtocolError("game_state missing screen_type")
	}
	kind, ok := spire.ScreenKindFromName(*gs.ScreenType)
	if !ok {
		return nil, protocol.Errorf("unknown screen_type %q", *gs.ScreenType)
	}

	partial := *env.Partial
	if partial && s.current == nil {
		return nil, protocol.ProtocolError("partial update with no prior snapshot")
	}

	if partial {
		if err := s.checkDesync(gs); err != nil {
			return nil, err
		}
	}

	var next *spire.Snapshot
	var err error
	if partial {
		next, err = s.applyPartial(kind, gs)
	} else {
		next, err = buildFull(kind, gs)
	}
	if err != nil {
		return nil, err
	}

	if env.AvailableCommands != nil {
		next.Commands = commandsFromWire(env.AvailableCommands)
	} else if !partial {
		next.Commands = spire.CommandSet{}
	}

	s.seq++
	next.Seq = s.seq
	if !partial && s.resyncPending {
		log.Printf("[Sync] full dump received, resync complete (seq=%d)", next.Seq)
		s.resyncPending = false
	}
	s.current = next
	return next, nil
}

// checkDesync enforces positional monster identity: during an active
// combat a partial update must describe the same number of monsters as
// the snapshot it extends.
func (s *Synchronizer) checkDesync(gs *protocol.GameState) error {
	prev := s.current
	if !prev.InCombat || gs.CombatState == nil || gs.CombatState.Monsters == nil {
		return nil
	}
	got := len(gs.CombatState.Monsters)
	want := len(prev.Monsters)
	if got == want {
		return nil
	}
	if s.resyncPending {
		// The one-shot resync was already requested and the bridge kept
		// sending mismatched partials; this is no longer recoverable.
		return protocol.Errorf("repeated desync before full resync (have %d monsters, update has %d)", want, got)
	}
	s.resyncPending = true
	log.Printf("[Sync] monster count mismatch (have %d, update has %d), forcing full resync", want, got)
	return &DesyncError{ExpectedMonsters: want, GotMonsters: got}
}

// buildFull constructs a snapshot from a full dump alone. Nothing is
// inherited; absent numerics become Unknown, absent slices stay nil.
func buildFull(kind spire.ScreenKind, gs *protocol.GameState) (*spire.Snapshot, error) {
	snap := &spire.Snapshot{
		Class:                  strOr(gs.Class, ""),
		AscensionLevel:         intOr(gs.AscensionLevel),
		CurrentHP:              intOr(gs.CurrentHP),
		MaxHP:                  intOr(gs.MaxHP),
		Floor:                  intOr(gs.Floor),
		Act:                    intOr(gs.Act),
		Gold:                   intOr(gs.Gold),
		Seed:                   int64Or(gs.Seed),
		ActBoss:                strOr(gs.ActBoss, ""),
		CurrentAction:          strOr(gs.CurrentAction, ""),
		Relics:                 relicsFromWire(gs.Relics),
		Deck:                   cardsFromWire(gs.Deck),
		Potions:                potionsFromWire(gs.Potions),
		Map:                    mapFromWire(gs.Map),
		ScreenKind:             kind,
		Turn:                   spire.Unknown,
		CardsDiscardedThisTurn: spire.Unknown,
	}
	if gs.ScreenUp != nil {
		snap.ScreenUp = *gs.ScreenUp
	}
	if gs.RoomPhase != nil {
		snap.RoomPhase = spire.RoomPhaseFromName(*gs.RoomPhase)
	}
	snap.RoomType = strOr(gs.RoomType, "")
	snap.ChoiceAvailable = gs.HasChoiceList()
	if snap.ChoiceAvailable {
		snap.ChoiceList = append([]string{}, gs.ChoiceList...)
	}

	screen, err := screenFromWire(kind, gs.ScreenState)
	if err != nil {
		return nil, err
	}
	snap.Screen = screen

	snap.InCombat = snap.RoomPhase == spire.RoomPhaseCombat
	if snap.InCombat {
		if err := applyCombat(snap, gs.CombatState); err != nil {
			return nil, err
		}
	}
	return snap, nil
}

// applyPartial starts from a deep copy of the previous snapshot and
// overwrites only the fields the message carries. Referential
// independence from the published snapshot is what lets readers keep
// the old one safely.
func (s *Synchronizer) applyPartial(kind spire.ScreenKind, gs *protocol.GameState) (*spire.Snapshot, error) {
	snap := s.current.Clone()
	snap.ScreenKind = kind

	if gs.Class != nil {
		snap.Class = *gs.Class
	}
	if gs.AscensionLevel != nil {
		snap.AscensionLevel = *gs.AscensionLevel
	}
	if gs.CurrentHP != nil {
		snap.CurrentHP = *gs.CurrentHP
	}
	if gs.MaxHP != nil {
		snap.MaxHP = *gs.MaxHP
	}
	if gs.Floor != nil {
		snap.Floor = *gs.Floor
	}
	if gs.Act != nil {
		snap.Act = *gs.Act
	}
	if gs.Gold != nil {
		snap.Gold = *gs.Gold
	}
	if gs.Seed != nil {
		snap.Seed = *gs.Seed
	}
	if gs.ActBoss != nil {
		snap.ActBoss = *gs.ActBoss
	}
	if gs.CurrentAction != nil {
		snap.CurrentAction = *gs.CurrentAction
	}
	if gs.Relics != nil {
		snap.Relics = relicsFromWire(gs.Relics)
	}
	if gs.Deck != nil {
		snap.Deck = cardsFromWire(gs.Deck)
	}
	if gs.Potions != nil {
		snap.Potions = potionsFromWire(gs.Potions)
	}
	if gs.Map != nil {
		snap.Map = mapFromWire(gs.Map)
	}
	if gs.ScreenUp != nil {
		snap.ScreenUp = *gs.ScreenUp
	}
	if gs.RoomPhase != nil {
		snap.RoomPhase = spire.RoomPhaseFromName(*gs.RoomPhase)
	}
	if gs.RoomType != nil {
		snap.RoomType = *gs.RoomType
	}
	if gs.HasChoiceList() {
		snap.ChoiceAvailable = true
		snap.ChoiceList = append([]string{}, gs.ChoiceList...)
	}
	if gs.ScreenState != nil {
		screen, err := screenFromWire(kind, gs.ScreenState)
		if err != nil {
			return nil, err
		}
		snap.Screen = screen
	} else if kind != s.current.ScreenKind {
		// Screen changed but no detail came along; the stale detail from
		// the previous screen must not masquerade as this one's.
		snap.Screen = spire.Screen{}
		snap.ChoiceAvailable = gs.HasChoiceList()
		if !gs.HasChoiceList() {
			snap.ChoiceList = nil
		}
	}

	if gs.RoomPhase != nil {
		snap.InCombat = snap.RoomPhase == spire.RoomPhaseCombat
	}
	if snap.InCombat && gs.CombatState != nil {
		if err := applyCombatPartial(snap, gs.CombatState); err != nil {
			return nil, err
		}
	}
	if !snap.InCombat {
		clearCombat(snap)
	}
	return snap, nil
}

func applyCombat(snap *spire.Snapshot, cs *protocol.CombatState) error {
	if cs == nil {
		// Combat announced with no combat_state: represent it as fully
		// unknown rather than inventing an empty battlefield.
		snap.Player = nil
		snap.Monsters = nil
		return nil
	}
	snap.Player = playerFromWire(cs.Player)
	snap.Monsters = monstersFromWire(cs.Monsters)
	snap.DrawPile = cardsFromWire(cs.DrawPile)
	snap.DiscardPile = cardsFromWire(cs.DiscardPile)
	snap.ExhaustPile = cardsFromWire(cs.ExhaustPile)
	snap.Hand = cardsFromWire(cs.Hand)
	snap.Limbo = cardsFromWire(cs.Limbo)
	if cs.CardInPlay != nil {
		c := cardFromWire(*cs.CardInPlay)
		snap.CardInPlay = &c
	}
	snap.Turn = intOr(cs.Turn)
	snap.CardsDiscardedThisTurn = intOr(cs.CardsDiscardedThisTurn)
	return nil
}

func applyCombatPartial(snap *spire.Snapshot, cs *protocol.CombatState) error {
	if cs.Player != nil {
		snap.Player = playerFromWire(cs.Player)
	}
	if cs.Monsters != nil {
		snap.Monsters = monstersFromWire(cs.Monsters)
	}
	if cs.DrawPile != nil {
		snap.DrawPile = cardsFromWire(cs.DrawPile)
	}
	if cs.DiscardPile != nil {
		snap.DiscardPile = cardsFromWire(cs.DiscardPile)
	}
	if cs.ExhaustPile != nil {
		snap.ExhaustPile = cardsFromWire(cs.ExhaustPile)
	}
	if cs.Hand != nil {
		snap.Hand = cardsFromWire(cs.Hand)
	}
	if cs.Limbo != nil {
		snap.Limbo = cardsFromWire(cs.Limbo)
	}
	if cs.CardInPlay != nil {
		c := cardFromWire(*cs.CardInPlay)
		snap.CardInPlay = &c
	}
	if cs.Turn != nil {
		snap.Turn = *cs.Turn
	}
	if cs.CardsDiscardedThisTurn != nil {
		snap.CardsDiscardedThisTurn = *cs.CardsDiscardedThisTurn
	}
	return nil
}

func clearCombat(snap *spire.Snapshot) {
	snap.Player = nil
	snap.Monsters = nil
	snap.DrawPile = nil
	snap.DiscardPile = nil
	snap.ExhaustPile = nil
	snap.Hand = nil
	snap.Limbo = nil
	snap.CardInPlay = nil
	snap.Turn = spire.Unknown
	snap.CardsDiscardedThisTurn = spire.Unknown
}

func intOr(p *int) int {
	if p == nil {
		return spire.Unknown
	}
	return *p
}

func int64Or(p *int64) int64 {
	if p == nil {
		return spire.Unknown
	}
	return *p
}

func strOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
