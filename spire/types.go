package spire

// Unknown is the sentinel for numeric fields the bridge omitted from a
// full dump. It is distinct from zero: hp 0 means dead, hp Unknown means
// the bridge never told us.
const Unknown = -1

// ScreenKind 当前交互界面类型
type ScreenKind byte

const (
	ScreenKindNone ScreenKind = iota
	ScreenKindEvent
	ScreenKindChest
	ScreenKindShopRoom
	ScreenKindRest
	ScreenKindCardReward
	ScreenKindCombatReward
	ScreenKindMap
	ScreenKindBossReward
	ScreenKindShop
	ScreenKindGrid
	ScreenKindHandSelect
	ScreenKindGameOver
	ScreenKindComplete
)

var ScreenKindDictionary = map[ScreenKind]string{
	ScreenKindNone:         "NONE",
	ScreenKindEvent:        "EVENT",
	ScreenKindChest:        "CHEST",
	ScreenKindShopRoom:     "SHOP_ROOM",
	ScreenKindRest:         "REST",
	ScreenKindCardReward:   "CARD_REWARD",
	ScreenKindCombatReward: "COMBAT_REWARD",
	ScreenKindMap:          "MAP",
	ScreenKindBossReward:   "BOSS_REWARD",
	ScreenKindShop:         "SHOP_SCREEN",
	ScreenKindGrid:         "GRID",
	ScreenKindHandSelect:   "HAND_SELECT",
	ScreenKindGameOver:     "GAME_OVER",
	ScreenKindComplete:     "COMPLETE",
}

// ScreenKindFromName resolves the bridge's screen_type tag. The bool is
// false for tags this client does not know.
func ScreenKindFromName(name string) (ScreenKind, bool) {
	for k, v := range ScreenKindDictionary {
		if v == name {
			return k, true
		}
	}
	return ScreenKindNone, false
}

func (k ScreenKind) String() string { return ScreenKindDictionary[k] }

// Terminal reports whether the screen ends the session: no further
// interaction is possible once it is shown.
func (k ScreenKind) Terminal() bool {
	return k == ScreenKindGameOver || k == ScreenKindComplete
}

// RoomPhase 房间阶段
type RoomPhase byte

const (
	RoomPhaseIncomplete RoomPhase = iota
	RoomPhaseCombat
	RoomPhaseEvent
	RoomPhaseComplete
)

var RoomPhaseDictionary = map[RoomPhase]string{
	RoomPhaseIncomplete: "INCOMPLETE",
	RoomPhaseCombat:     "COMBAT",
	RoomPhaseEvent:      "EVENT",
	RoomPhaseComplete:   "COMPLETE",
}

func RoomPhaseFromName(name string) RoomPhase {
	for k, v := range RoomPhaseDictionary {
		if v == name {
			return k
		}
	}
	return RoomPhaseIncomplete
}

// Intent 怪物意图
type Intent byte

const (
	IntentUnknown Intent = iota
	IntentAttack
	IntentAttackBuff
	IntentAttackDebuff
	IntentAttackDefend
	IntentBuff
	IntentDebuff
	IntentStrongDebuff
	IntentDebug
	IntentDefend
	IntentDefendDebuff
	IntentDefendBuff
	IntentEscape
	IntentMagic
	IntentNone
	IntentSleep
	IntentStun
)

var IntentDictionary = map[Intent]string{
	IntentUnknown:      "UNKNOWN",
	IntentAttack:       "ATTACK",
	IntentAttackBuff:   "ATTACK_BUFF",
	IntentAttackDebuff: "ATTACK_DEBUFF",
	IntentAttackDefend: "ATTACK_DEFEND",
	IntentBuff:         "BUFF",
	IntentDebuff:       "DEBUFF",
	IntentStrongDebuff: "STRONG_DEBUFF",
	IntentDebug:        "DEBUG",
	IntentDefend:       "DEFEND",
	IntentDefendDebuff: "DEFEND_DEBUFF",
	IntentDefendBuff:   "DEFEND_BUFF",
	IntentEscape:       "ESCAPE",
	IntentMagic:        "MAGIC",
	IntentNone:         "NONE",
	IntentSleep:        "SLEEP",
	IntentStun:         "STUN",
}

func IntentFromName(name string) Intent {
	for k, v := range IntentDictionary {
		if v == name {
			return k
		}
	}
	return IntentUnknown
}

// IsAttack reports whether the intent deals damage this turn.
func (i Intent) IsAttack() bool {
	switch i {
	case IntentAttack, IntentAttackBuff, IntentAttackDebuff, IntentAttackDefend:
		return true
	}
	return false
}

// CardType 卡牌类型
type CardType byte

const (
	CardTypeUnknown CardType = iota
	CardTypeAttack
	CardTypeSkill
	CardTypePower
	CardTypeStatus
	CardTypeCurse
)

var CardTypeDictionary = map[CardType]string{
	CardTypeUnknown: "UNKNOWN",
	CardTypeAttack:  "ATTACK",
	CardTypeSkill:   "SKILL",
	CardTypePower:   "POWER",
	CardTypeStatus:  "STATUS",
	CardTypeCurse:   "CURSE",
}

func CardTypeFromName(name string) CardType {
	for k, v := range CardTypeDictionary {
		if v == name {
			return k
		}
	}
	return CardTypeUnknown
}

// CardRarity 卡牌稀有度
type CardRarity byte

const (
	CardRarityUnknown CardRarity = iota
	CardRarityBasic
	CardRarityCommon
	CardRarityUncommon
	CardRarityRare
	CardRaritySpecial
	CardRarityCurse
)

var CardRarityDictionary = map[CardRarity]string{
	CardRarityUnknown:  "UNKNOWN",
	CardRarityBasic:    "BASIC",
	CardRarityCommon:   "COMMON",
	CardRarityUncommon: "UNCOMMON",
	CardRarityRare:     "RARE",
	CardRaritySpecial:  "SPECIAL",
	CardRarityCurse:    "CURSE",
}

func CardRarityFromName(name string) CardRarity {
	for k, v := range CardRarityDictionary {
		if v == name {
			return k
		}
	}
	return CardRarityUnknown
}

// RewardKind 战斗奖励类型
type RewardKind byte

const (
	RewardKindUnknown RewardKind = iota
	RewardKindCard
	RewardKindGold
	RewardKindRelic
	RewardKindPotion
	RewardKindStolenGold
	RewardKindEmeraldKey
	RewardKindSapphireKey
)

var RewardKindDictionary = map[RewardKind]string{
	RewardKindUnknown:     "UNKNOWN",
	RewardKindCard:        "CARD",
	RewardKindGold:        "GOLD",
	RewardKindRelic:       "RELIC",
	RewardKindPotion:      "POTION",
	RewardKindStolenGold:  "STOLEN_GOLD",
	RewardKindEmeraldKey:  "EMERALD_KEY",
	RewardKindSapphireKey: "SAPPHIRE_KEY",
}

func RewardKindFromName(name string) RewardKind {
	for k, v := range RewardKindDictionary {
		if v == name {
			return k
		}
	}
	return RewardKindUnknown
}

// RestOption 休息选项
type RestOption byte

const (
	RestOptionNone RestOption = iota
	RestOptionDig
	RestOptionLift
	RestOptionRecall
	RestOptionRest
	RestOptionSmith
	RestOptionToke
)

var RestOptionDictionary = map[RestOption]string{
	RestOptionNone:   "NONE",
	RestOptionDig:    "DIG",
	RestOptionLift:   "LIFT",
	RestOptionRecall: "RECALL",
	RestOptionRest:   "REST",
	RestOptionSmith:  "SMITH",
	RestOptionToke:   "TOKE",
}

func RestOptionFromName(name string) RestOption {
	for k, v := range RestOptionDictionary {
		if v == name {
			return k
		}
	}
	return RestOptionNone
}

// ChestKind 宝箱类型
type ChestKind byte

const (
	ChestKindUnknown ChestKind = iota
	ChestKindSmall
	ChestKindMedium
	ChestKindLarge
	ChestKindBoss
)

var ChestKindDictionary = map[ChestKind]string{
	ChestKindUnknown: "UNKNOWN",
	ChestKindSmall:   "SmallChest",
	ChestKindMedium:  "MediumChest",
	ChestKindLarge:   "LargeChest",
	ChestKindBoss:    "BossChest",
}

func ChestKindFromName(name string) ChestKind {
	for k, v := range ChestKindDictionary {
		if v == name {
			return k
		}
	}
	return ChestKindUnknown
}
