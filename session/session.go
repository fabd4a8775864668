// Package session drives the agent: a strictly alternating loop of
// read message, reconcile, decide, emit command. It owns lifecycle and
// error policy; game knowledge lives in statesync and agent.
package session

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"spirebot/agent"
	"spirebot/ledger"
	"spirebot/protocol"
	"spirebot/spire"
	"spirebot/statesync"
)

// Publisher receives every reconciled snapshot with its diff. Optional;
// the session works without one.
type Publisher interface {
	Publish(snap *spire.Snapshot, summary spire.ChangeSummary)
}

// Config assembles a session's collaborators.
type Config struct {
	Transport *protocol.Transport
	Decider   agent.Decider
	Ledger    ledger.Service
	Publisher Publisher

	// Class, Ascension and Seed parameterise the start command issued
	// when the bridge reports no game in progress.
	Class     string
	Ascension int
	Seed      string

	// MaxRuns stops after that many completed runs; 0 means run forever.
	MaxRuns int
}

// Session is the driving loop. Not safe for concurrent use; one
// goroutine reads, decides and writes.
type Session struct {
	cfg  Config
	sync *statesync.Synchronizer

	runs int
}

func New(cfg Config) *Session {
	return &Session{cfg: cfg, sync: statesync.New()}
}

// Runs returns how many runs finished during this session.
func (s *Session) Runs() int { return s.runs }

// Run executes the loop until the stream ends, the run quota is met, or
// a fatal error surfaces. A clean stream end returns nil.
func (s *Session) Run(ctx context.Context) error {
	if err := s.cfg.Transport.WriteCommand(protocol.ReadyCommand); err != nil {
		return err
	}
	log.Printf("[Session] Ready sent, decider: %s", s.cfg.Decider.Name())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := s.cfg.Transport.ReadLine()
		if err == io.EOF {
			log.Printf("[Session] Stream closed after %d run(s)", s.runs)
			return nil
		}
		if err != nil {
			return err
		}

		env, err := protocol.DecodeEnvelope(line)
		if err != nil {
			return err
		}
		done, err := s.handle(ctx, env)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// handle processes one envelope. It returns done=true when the run
// quota has been reached.
func (s *Session) handle(ctx context.Context, env *protocol.Envelope) (bool, error) {
	if env.Error != nil && *env.Error != "" {
		// The bridge rejected the previous command. The state that comes
		// with the error is still authoritative, so fall through and
		// decide again from it; with no state there is nothing to do but
		// re-request one.
		log.Printf("[Session] Bridge error: %s", *env.Error)
		if env.GameState == nil {
			return false, s.emit(spire.RequestState())
		}
	}

	if env.InGame != nil && !*env.InGame {
		return s.handleOutOfGame(ctx)
	}
	if env.GameState == nil {
		// Heartbeat frame (ready_for_command with nothing new). Nothing
		// to reconcile, nothing to answer.
		return false, nil
	}

	prev := s.sync.Current()
	snap, err := s.sync.Reconcile(env)
	if err != nil {
		var desync *statesync.DesyncError
		if errors.As(err, &desync) {
			// One forced resync; the synchronizer escalates if it repeats.
			return false, s.emit(spire.RequestState())
		}
		return false, err
	}

	summary := spire.Diff(prev, snap)
	if s.cfg.Publisher != nil {
		s.cfg.Publisher.Publish(snap, summary)
	}
	for _, c := range summary.Changes {
		log.Printf("[Session] %s", c)
	}

	if snap.Terminal() {
		// The death screen can repeat across several frames while the
		// bridge waits for proceed; only the transition into a terminal
		// screen counts as a finished run.
		if prev == nil || !prev.Terminal() {
			if err := s.recordRun(ctx, snap); err != nil {
				log.Printf("[Session] Record run failed: %v", err)
			}
			s.runs++
		}
		if s.cfg.MaxRuns > 0 && s.runs >= s.cfg.MaxRuns {
			log.Printf("[Session] Run quota reached (%d)", s.runs)
			return true, s.emit(spire.Proceed(snap))
		}
		return false, s.emit(spire.Proceed(snap))
	}

	if !env.ReadyForCommand {
		return false, nil
	}

	legal := spire.LegalActions(snap)
	action, err := s.cfg.Decider.SelectAction(snap, legal)
	if err != nil {
		return false, err
	}
	if !action.ValidFor(snap) {
		return false, &spire.StaleActionError{ActionSeq: action.Snapshot, SnapshotSeq: snap.Seq}
	}
	return false, s.emit(action)
}

func (s *Session) handleOutOfGame(ctx context.Context) (bool, error) {
	if s.cfg.MaxRuns > 0 && s.runs >= s.cfg.MaxRuns {
		return true, nil
	}
	log.Printf("[Session] No game in progress, starting %s ascension %d", s.cfg.Class, s.cfg.Ascension)
	return false, s.emit(spire.StartGame(s.cfg.Class, s.cfg.Ascension, s.cfg.Seed))
}

func (s *Session) recordRun(ctx context.Context, snap *spire.Snapshot) error {
	if s.cfg.Ledger == nil {
		return nil
	}
	result := ledger.RunResult{
		Class:     snap.Class,
		Ascension: snap.AscensionLevel,
		Floor:     snap.Floor,
		Seed:      snap.Seed,
		EndedAt:   time.Now(),
	}
	if snap.Screen.GameOver != nil {
		result.Score = snap.Screen.GameOver.Score
		result.Victory = snap.Screen.GameOver.Victory
	}
	result.Victory = result.Victory || snap.ScreenKind == spire.ScreenKindComplete
	log.Printf("[Session] Run over: floor %d, score %d, victory %v", result.Floor, result.Score, result.Victory)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.cfg.Ledger.RecordRun(ctx, result)
}

func (s *Session) emit(action spire.Action) error {
	cmd, err := protocol.EncodeCommand(action)
	if err != nil {
		return err
	}
	return s.cfg.Transport.WriteCommand(cmd)
}
