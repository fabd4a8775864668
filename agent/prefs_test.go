package agent

import (
	"os"
	"path/filepath"
	"testing"

	"spirebot/spire"
)

func TestLoadPreferences_EmptyPathReturnsDefaults(t *testing.T) {
	prefs, err := LoadPreferences("")
	if err != nil {
		t.Fatalf("LoadPreferences err: %v", err)
	}
	if prefs.Class != "IRONCLAD" || prefs.MapPreference != MapPreferenceRoute {
		t.Fatalf("unexpected defaults: %+v", prefs)
	}
}

func TestLoadPreferences_YAMLOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	content := `
class: THE_SILENT
ascension: 3
map_preference: first
card_priority:
  - Neutralize
  - Survivor
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}
	prefs, err := LoadPreferences(path)
	if err != nil {
		t.Fatalf("LoadPreferences err: %v", err)
	}
	if prefs.Class != "THE_SILENT" || prefs.Ascension != 3 || prefs.MapPreference != MapPreferenceFirst {
		t.Fatalf("overrides not applied: %+v", prefs)
	}
	if prefs.cardRank("Neutralize") != 0 || prefs.cardRank("Strike") != 2 {
		t.Fatalf("card priority not applied: %+v", prefs.CardPriority)
	}
	// Untouched sections keep their defaults.
	if len(prefs.RewardPriority) == 0 || prefs.symbolWeight("R") != 160 {
		t.Fatalf("defaults lost for untouched sections: %+v", prefs)
	}
}

func TestLoadPreferences_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"unknown class", "class: PALADIN\n"},
		{"ascension out of range", "ascension: 33\n"},
		{"bad map preference", "map_preference: zigzag\n"},
		{"bad reward kind", "reward_priority: [SHINIES]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write prefs: %v", err)
			}
			if _, err := LoadPreferences(path); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestRewardRank_UnlistedKindsStillClaimable(t *testing.T) {
	prefs := DefaultPreferences()
	listed := prefs.rewardRank(spire.RewardKindRelic)
	unlisted := prefs.rewardRank(spire.RewardKindEmeraldKey)
	if listed >= unlisted {
		t.Fatalf("listed kinds must outrank unlisted ones: %d vs %d", listed, unlisted)
	}
}
