package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"spirebot/agent"
	"spirebot/ledger"
	"spirebot/observer"
	"spirebot/protocol"
	"spirebot/session"
)

func main() {
	// The bridge owns stdin/stdout, so all logging goes to stderr.
	log.SetOutput(os.Stderr)

	prefs, err := agent.LoadPreferences(os.Getenv("SPIREBOT_PREFS"))
	if err != nil {
		log.Fatalf("[Main] Failed to load preferences: %v", err)
	}

	ledgerService, ledgerMode, err := ledger.NewServiceFromEnv()
	if err != nil {
		log.Fatalf("[Main] Failed to init ledger service: %v", err)
	}
	defer ledgerService.Close()
	log.Printf("[Main] Ledger mode: %s", ledgerMode)

	cfg := session.Config{
		Transport: protocol.NewTransport(os.Stdin, os.Stdout),
		Decider:   deciderFromEnv(prefs),
		Ledger:    ledgerService,
		Class:     prefs.Class,
		Ascension: prefs.Ascension,
		Seed:      prefs.Seed,
	}

	if addr := strings.TrimSpace(os.Getenv("OBSERVER_ADDR")); addr != "" {
		obs := observer.New(addr)
		obs.Start()
		defer obs.Close()
		cfg.Publisher = obs
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sess := session.New(cfg)
	if err := sess.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("[Main] Session failed: %v", err)
	}
	log.Printf("[Main] Session finished cleanly, %d run(s) played", sess.Runs())
}

func deciderFromEnv(prefs agent.Preferences) agent.Decider {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SPIREBOT_DECIDER"))) {
	case "random":
		return agent.NewRandom(0)
	default:
		return agent.NewHeuristic(prefs)
	}
}
