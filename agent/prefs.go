package agent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"spirebot/spire"
)

const (
	MapPreferenceRoute = "route"
	MapPreferenceFirst = "first"
)

// Preferences are the tunable comparators for everything the heuristic
// has no hard rule for: which reward kinds to claim first, how to walk
// the map, and which cards to favour. They are a configuration point,
// not game law.
type Preferences struct {
	Class     string `yaml:"class"`
	Ascension int    `yaml:"ascension"`
	Seed      string `yaml:"seed"`

	// RewardPriority orders reward kinds best-first.
	RewardPriority []string `yaml:"reward_priority"`

	// MapPreference selects the map comparator: "route" plans a full
	// path by symbol weight, "first" always takes the first next node.
	MapPreference string `yaml:"map_preference"`

	// CardPriority orders card names best-first for rewards, shops and
	// grid picks. Cards not listed rank below all listed ones.
	CardPriority []string `yaml:"card_priority"`

	// MapSymbolWeights scores map room glyphs for route planning.
	MapSymbolWeights map[string]int `yaml:"map_symbol_weights"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Class:          "IRONCLAD",
		Ascension:      0,
		RewardPriority: []string{"RELIC", "POTION", "GOLD", "CARD"},
		MapPreference:  MapPreferenceRoute,
		CardPriority:   []string{"Bash", "Strike", "Defend"},
		MapSymbolWeights: map[string]int{
			"R": 160, // rest
			"T": 150, // treasure
			"?": 120, // event
			"M": 100, // monster
			"$": 80,  // shop
			"E": 40,  // elite
		},
	}
}

// LoadPreferences reads a YAML preferences file, layering it over the
// defaults. An empty path returns the defaults unchanged.
func LoadPreferences(path string) (Preferences, error) {
	prefs := DefaultPreferences()
	if path == "" {
		return prefs, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return prefs, fmt.Errorf("read preferences: %w", err)
	}
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("parse preferences: %w", err)
	}
	if err := prefs.validate(); err != nil {
		return prefs, err
	}
	return prefs, nil
}

var playerClasses = map[string]bool{
	"IRONCLAD":   true,
	"THE_SILENT": true,
	"DEFECT":     true,
	"WATCHER":    true,
}

func (p Preferences) validate() error {
	if !playerClasses[p.Class] {
		return fmt.Errorf("unknown class %q", p.Class)
	}
	if p.Ascension < 0 || p.Ascension > 20 {
		return fmt.Errorf("ascension must be in [0,20], got %d", p.Ascension)
	}
	switch p.MapPreference {
	case MapPreferenceRoute, MapPreferenceFirst:
	default:
		return fmt.Errorf("map_preference must be %q or %q, got %q", MapPreferenceRoute, MapPreferenceFirst, p.MapPreference)
	}
	for _, kind := range p.RewardPriority {
		if spire.RewardKindFromName(kind) == spire.RewardKindUnknown {
			return fmt.Errorf("unknown reward kind %q in reward_priority", kind)
		}
	}
	return nil
}

// rewardRank returns the claim order for a reward kind, lower first.
// Kinds missing from the priority list rank after all listed ones but
// are still claimed; keys are never worth skipping.
func (p Preferences) rewardRank(kind spire.RewardKind) int {
	name := spire.RewardKindDictionary[kind]
	for i, k := range p.RewardPriority {
		if k == name {
			return i
		}
	}
	return len(p.RewardPriority)
}

// cardRank returns the pick order for a card name, lower better.
func (p Preferences) cardRank(name string) int {
	for i, n := range p.CardPriority {
		if n == name {
			return i
		}
	}
	return len(p.CardPriority)
}

func (p Preferences) symbolWeight(symbol string) int {
	if w, ok := p.MapSymbolWeights[symbol]; ok {
		return w
	}
	return 0
}
