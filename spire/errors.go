package spire

import "fmt"

// StaleActionError reports an action applied against a newer snapshot
// than the one it was derived from.
type StaleActionError struct {
	ActionSeq   uint64
	SnapshotSeq uint64
}

func (e *StaleActionError) Error() string {
	return fmt.Sprintf("stale action: derived from snapshot %d, current is %d", e.ActionSeq, e.SnapshotSeq)
}
