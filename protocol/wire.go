package protocol

import "encoding/json"

// Envelope is one inbound frame from the bridge. Pointer fields make
// "omitted" distinguishable from a zero value, which is what the
// full/partial contract hangs on.
type Envelope struct {
	Error             *string    `json:"error"`
	ReadyForCommand   bool       `json:"ready_for_command"`
	InGame            *bool      `json:"in_game"`
	Partial           *bool      `json:"partial"`
	GameState         *GameState `json:"game_state"`
	AvailableCommands []string   `json:"available_commands"`
}

// GameState mirrors the bridge's game_state object. Every field is
// optional on the wire; the synchronizer decides what absence means.
type GameState struct {
	Class          *string `json:"class"`
	AscensionLevel *int    `json:"ascension_level"`
	CurrentHP      *int    `json:"current_hp"`
	MaxHP          *int    `json:"max_hp"`
	Floor          *int    `json:"floor"`
	Act            *int    `json:"act"`
	Gold           *int    `json:"gold"`
	Seed           *int64  `json:"seed"`
	ActBoss        *string `json:"act_boss"`
	CurrentAction  *string `json:"current_action"`

	Relics  []WireRelic  `json:"relics"`
	Deck    []WireCard   `json:"deck"`
	Potions []WirePotion `json:"potions"`
	Map     []WireNode   `json:"map"`

	ScreenUp    *bool           `json:"is_screen_up"`
	ScreenType  *string         `json:"screen_type"`
	ScreenState json.RawMessage `json:"screen_state"`
	RoomPhase   *string         `json:"room_phase"`
	RoomType    *string         `json:"room_type"`
	ChoiceList  []string        `json:"choice_list"`

	CombatState *CombatState `json:"combat_state"`
}

// HasChoiceList distinguishes a present-but-empty choice list from an
// absent one, matching the raw JSON: the bridge omits the key entirely
// when no choices exist.
func (g *GameState) HasChoiceList() bool { return g.ChoiceList != nil }

type CombatState struct {
	Player                 *WirePlayer   `json:"player"`
	Monsters               []WireMonster `json:"monsters"`
	DrawPile               []WireCard    `json:"draw_pile"`
	DiscardPile            []WireCard    `json:"discard_pile"`
	ExhaustPile            []WireCard    `json:"exhaust_pile"`
	Hand                   []WireCard    `json:"hand"`
	Limbo                  []WireCard    `json:"limbo"`
	CardInPlay             *WireCard     `json:"card_in_play"`
	Turn                   *int          `json:"turn"`
	CardsDiscardedThisTurn *int          `json:"cards_discarded_this_turn"`
}

type WireCard struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Rarity     string `json:"rarity"`
	UUID       string `json:"uuid"`
	Upgrades   int    `json:"upgrades"`
	Cost       int    `json:"cost"`
	HasTarget  bool   `json:"has_target"`
	IsPlayable bool   `json:"is_playable"`
	Exhausts   bool   `json:"exhausts"`
	Misc       int    `json:"misc"`
	Price      int    `json:"price"`
}

type WireRelic struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Counter int    `json:"counter"`
	Price   int    `json:"price"`
}

type WirePotion struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CanUse         bool   `json:"can_use"`
	CanDiscard     bool   `json:"can_discard"`
	RequiresTarget bool   `json:"requires_target"`
	Price          int    `json:"price"`
}

type WirePower struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

type WireOrb struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	EvokeAmount   int    `json:"evoke_amount"`
	PassiveAmount int    `json:"passive_amount"`
}

type WirePlayer struct {
	MaxHP     int         `json:"max_hp"`
	CurrentHP int         `json:"current_hp"`
	Block     int         `json:"block"`
	Energy    int         `json:"energy"`
	Powers    []WirePower `json:"powers"`
	Orbs      []WireOrb   `json:"orbs"`
}

type WireMonster struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	MaxHP              int         `json:"max_hp"`
	CurrentHP          int         `json:"current_hp"`
	Block              int         `json:"block"`
	Intent             string      `json:"intent"`
	HalfDead           bool        `json:"half_dead"`
	IsGone             bool        `json:"is_gone"`
	MoveID             int         `json:"move_id"`
	LastMoveID         int         `json:"last_move_id"`
	SecondLastMoveID   int         `json:"second_last_move_id"`
	MoveBaseDamage     int         `json:"move_base_damage"`
	MoveAdjustedDamage int         `json:"move_adjusted_damage"`
	MoveHits           int         `json:"move_hits"`
	Powers             []WirePower `json:"powers"`
}

type WireNode struct {
	X        int           `json:"x"`
	Y        int           `json:"y"`
	Symbol   string        `json:"symbol"`
	Children []WireNodePos `json:"children"`
}

type WireNodePos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Screen-state payloads, one per screen_type that carries detail.

type WireEventScreen struct {
	EventName string            `json:"event_name"`
	EventID   string            `json:"event_id"`
	BodyText  string            `json:"body_text"`
	Options   []WireEventOption `json:"options"`
}

type WireEventOption struct {
	Text        string `json:"text"`
	Label       string `json:"label"`
	Disabled    bool   `json:"disabled"`
	ChoiceIndex int    `json:"choice_index"`
}

type WireChestScreen struct {
	ChestType string `json:"chest_type"`
	ChestOpen bool   `json:"chest_open"`
}

type WireRestScreen struct {
	HasRested   bool     `json:"has_rested"`
	RestOptions []string `json:"rest_options"`
}

type WireCardRewardScreen struct {
	Cards         []WireCard `json:"cards"`
	BowlAvailable bool       `json:"bowl_available"`
	SkipAvailable bool       `json:"skip_available"`
}

type WireCombatReward struct {
	RewardType string      `json:"reward_type"`
	Gold       int         `json:"gold"`
	Relic      *WireRelic  `json:"relic"`
	Potion     *WirePotion `json:"potion"`
	Link       *WireRelic  `json:"link"`
}

type WireCombatRewardScreen struct {
	Rewards []WireCombatReward `json:"rewards"`
}

type WireMapScreen struct {
	CurrentNode   *WireNode  `json:"current_node"`
	NextNodes     []WireNode `json:"next_nodes"`
	BossAvailable bool       `json:"boss_available"`
}

type WireBossRewardScreen struct {
	Relics []WireRelic `json:"relics"`
}

type WireShopScreen struct {
	Cards          []WireCard   `json:"cards"`
	Relics         []WireRelic  `json:"relics"`
	Potions        []WirePotion `json:"potions"`
	PurgeAvailable bool         `json:"purge_available"`
	PurgeCost      int          `json:"purge_cost"`
}

type WireGridScreen struct {
	Cards         []WireCard `json:"cards"`
	SelectedCards []WireCard `json:"selected_cards"`
	NumCards      int        `json:"num_cards"`
	AnyNumber     bool       `json:"any_number"`
	ConfirmUp     bool       `json:"confirm_up"`
	ForUpgrade    bool       `json:"for_upgrade"`
	ForTransform  bool       `json:"for_transform"`
	ForPurge      bool       `json:"for_purge"`
}

type WireHandSelectScreen struct {
	Hand        []WireCard `json:"hand"`
	Selected    []WireCard `json:"selected"`
	MaxCards    int        `json:"max_cards"`
	CanPickZero bool       `json:"can_pick_zero"`
}

type WireGameOverScreen struct {
	Score   int  `json:"score"`
	Victory bool `json:"victory"`
}

// DecodeEnvelope parses one inbound line. Structural failures come back
// as ProtocolError; semantic validation is the synchronizer's job.
func DecodeEnvelope(line []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(line, &env); err != nil {
		return nil, Errorf("bad envelope: %v", err)
	}
	return &env, nil
}
