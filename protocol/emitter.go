package protocol

import (
	"fmt"
	"strings"

	"spirebot/spire"
)

// ReadyCommand is sent once before anything else, telling the bridge
// setup is complete.
const ReadyCommand = "ready"

// EncodeCommand serialises exactly one action into the bridge's command
// grammar. Hand indices are 1-based on the wire, monster and choice
// indices 0-based.
func EncodeCommand(a spire.Action) (string, error) {
	switch a.Kind {
	case spire.ActionKindPlayCard:
		if a.CardIndex < 0 {
			return "", Errorf("play: bad hand index %d", a.CardIndex)
		}
		if a.TargetIndex == spire.NoTarget {
			return fmt.Sprintf("play %d", a.CardIndex+1), nil
		}
		return fmt.Sprintf("play %d %d", a.CardIndex+1, a.TargetIndex), nil

	case spire.ActionKindEndTurn:
		return "end", nil

	case spire.ActionKindChoose:
		if a.ChoiceName != "" {
			return "choose " + a.ChoiceName, nil
		}
		return fmt.Sprintf("choose %d", a.ChoiceIndex), nil

	case spire.ActionKindUsePotion:
		if a.TargetIndex == spire.NoTarget {
			return fmt.Sprintf("potion use %d", a.PotionIndex), nil
		}
		return fmt.Sprintf("potion use %d %d", a.PotionIndex, a.TargetIndex), nil

	case spire.ActionKindDiscardPotion:
		return fmt.Sprintf("potion discard %d", a.PotionIndex), nil

	case spire.ActionKindProceed:
		return "proceed", nil

	case spire.ActionKindCancel:
		return "cancel", nil

	case spire.ActionKindWait, spire.ActionKindState:
		// The bridge has no dedicated no-op; re-requesting state is the
		// closest thing and is always accepted.
		return "state", nil

	case spire.ActionKindStart:
		parts := []string{"start", a.Class, fmt.Sprintf("%d", a.Ascension)}
		if a.Seed != "" {
			parts = append(parts, a.Seed)
		}
		return strings.Join(parts, " "), nil

	default:
		return "", Errorf("unencodable action kind %d", a.Kind)
	}
}
