package spire

// ActionKind 动作类型
type ActionKind byte

const (
	ActionKindNone ActionKind = iota
	ActionKindPlayCard
	ActionKindEndTurn
	ActionKindChoose
	ActionKindUsePotion
	ActionKindDiscardPotion
	ActionKindProceed
	ActionKindCancel
	ActionKindWait
	ActionKindStart
	ActionKindState
)

var ActionKindDictionary = map[ActionKind]string{
	ActionKindNone:          "NONE",
	ActionKindPlayCard:      "PLAY_CARD",
	ActionKindEndTurn:       "END_TURN",
	ActionKindChoose:        "CHOOSE",
	ActionKindUsePotion:     "USE_POTION",
	ActionKindDiscardPotion: "DISCARD_POTION",
	ActionKindProceed:       "PROCEED",
	ActionKindCancel:        "CANCEL",
	ActionKindWait:          "WAIT",
	ActionKindStart:         "START",
	ActionKindState:         "STATE",
}

func (k ActionKind) String() string { return ActionKindDictionary[k] }

// NoTarget marks a play or potion action without a monster target.
const NoTarget = -1

// Action is one command the agent can issue. An Action is only valid
// against the snapshot it was derived from; Snapshot carries that
// snapshot's Seq so a stale action can be rejected instead of sent.
type Action struct {
	Kind ActionKind

	// PlayCard: 0-based hand index. UsePotion/DiscardPotion: 0-based
	// potion slot index. Both use TargetIndex for the monster, NoTarget
	// when the card or potion takes none.
	CardIndex   int
	PotionIndex int
	TargetIndex int

	// Choose: either a 0-based index into the choice list or a named
	// choice (name wins when both are set).
	ChoiceIndex int
	ChoiceName  string

	// Start
	Class     string
	Ascension int
	Seed      string

	// Seq of the Snapshot this action was derived from. Zero means the
	// action is snapshot-independent (ready/state/start).
	Snapshot uint64
}

func PlayCard(snap *Snapshot, handIndex, targetIndex int) Action {
	return Action{Kind: ActionKindPlayCard, CardIndex: handIndex, TargetIndex: targetIndex, Snapshot: snap.Seq}
}

func EndTurn(snap *Snapshot) Action {
	return Action{Kind: ActionKindEndTurn, Snapshot: snap.Seq}
}

func Choose(snap *Snapshot, index int) Action {
	return Action{Kind: ActionKindChoose, ChoiceIndex: index, TargetIndex: NoTarget, Snapshot: snap.Seq}
}

func ChooseNamed(snap *Snapshot, name string) Action {
	return Action{Kind: ActionKindChoose, ChoiceName: name, TargetIndex: NoTarget, Snapshot: snap.Seq}
}

func UsePotion(snap *Snapshot, potionIndex, targetIndex int) Action {
	return Action{Kind: ActionKindUsePotion, PotionIndex: potionIndex, TargetIndex: targetIndex, Snapshot: snap.Seq}
}

func DiscardPotion(snap *Snapshot, potionIndex int) Action {
	return Action{Kind: ActionKindDiscardPotion, PotionIndex: potionIndex, TargetIndex: NoTarget, Snapshot: snap.Seq}
}

func Proceed(snap *Snapshot) Action {
	return Action{Kind: ActionKindProceed, Snapshot: snap.Seq}
}

func Cancel(snap *Snapshot) Action {
	return Action{Kind: ActionKindCancel, Snapshot: snap.Seq}
}

func Wait(snap *Snapshot) Action {
	return Action{Kind: ActionKindWait, Snapshot: snap.Seq}
}

func StartGame(class string, ascension int, seed string) Action {
	return Action{Kind: ActionKindStart, Class: class, Ascension: ascension, Seed: seed}
}

func RequestState() Action {
	return Action{Kind: ActionKindState}
}

// ValidFor reports whether the action was derived from the given
// snapshot. Snapshot-independent actions are valid against any.
func (a Action) ValidFor(snap *Snapshot) bool {
	return a.Snapshot == 0 || (snap != nil && a.Snapshot == snap.Seq)
}
