package nakama

const (
	// RpcQuickMatch is the RPC id clients call to enter the matchmaking queue.
	RpcQuickMatch = "quick_match"

	// RpcCreateRoom is the RPC id clients call to open a private room.
	RpcCreateRoom = "create_room"

	// MatchName is the authoritative match handler name registered with Nakama.
	MatchName = "clashofcards_match"

	// NotificationMatchFound is the notification code sent to queued players
	// when their match has been created.
	NotificationMatchFound = 1
)

// Match label keys used by matchmaking queries.
const (
	MatchLabelKeyOpenSeats = "open"
	MatchLabelKeyPhase     = "phase"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame   int64 = 1
	OpPassCard    int64 = 2
	OpChatMessage int64 = 3

	// Server -> Client events
	OpPlayerJoined       int64 = 101
	OpPlayerLeft         int64 = 102
	OpPlayerDisconnected int64 = 103
	OpGameStarted        int64 = 104
	OpStateUpdate        int64 = 105
	OpGameEnded          int64 = 106
	OpChatRelay          int64 = 107
	OpGameError          int64 = 110
)
