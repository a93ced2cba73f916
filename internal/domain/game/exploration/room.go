package exploration

// RoomKind decides which resolution a room runs
type RoomKind string

const (
	RoomKindMonster   RoomKind = "monster"
	RoomKindChest     RoomKind = "chest"
	RoomKindMerchant  RoomKind = "merchant"
	RoomKindBoss      RoomKind = "boss"
	RoomKindEncounter RoomKind = "encounter"
)

// RoomInfo is the display descriptor of a room kind
type RoomInfo struct {
	Title       string `json:"title"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

var roomInfo = map[RoomKind]RoomInfo{
	RoomKindMonster: {
		Title:       "Monster Room",
		Emoji:       "👾",
		Description: "A fearsome monster blocks your path!",
	},
	RoomKindChest: {
		Title:       "Treasure Room",
		Emoji:       "💎",
		Description: "You found a treasure chest!",
	},
	RoomKindMerchant: {
		Title:       "Merchant Room",
		Emoji:       "🏪",
		Description: "A friendly merchant offers their wares.",
	},
	RoomKindBoss: {
		Title:       "Boss Room",
		Emoji:       "👑",
		Description: "The dungeon boss awaits...",
	},
	RoomKindEncounter: {
		Title:       "Mysterious Room",
		Emoji:       "❓",
		Description: "A strange situation presents itself...",
	},
}

// DescribeRoom returns the descriptor for kind
func DescribeRoom(kind RoomKind) RoomInfo {
	if info, ok := roomInfo[kind]; ok {
		return info
	}
	return RoomInfo{Title: "Unknown Room", Emoji: "🚪", Description: "Nothing seems to be here."}
}

// Valid reports whether k is a known room kind
func (k RoomKind) Valid() bool {
	_, ok := roomInfo[k]
	return ok
}

// IsBattle reports whether the room is resolved by a fight
func (k RoomKind) IsBattle() bool {
	return k == RoomKindMonster || k == RoomKindBoss
}

// Label is the emoji and title
func (k RoomKind) Label() string {
	info := DescribeRoom(k)
	return info.Emoji + " " + info.Title
}
