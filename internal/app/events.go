package app

import "clashofcards/internal/domain"

// EventKind identifies emitted game events for Nakama dispatch.
type EventKind string

const (
	EventPlayerJoined       EventKind = "player_joined"
	EventPlayerLeft         EventKind = "player_left"
	EventPlayerDisconnected EventKind = "player_disconnected"
	EventGameStarted        EventKind = "game_started"
	EventStateUpdate        EventKind = "state_update"
	EventGameEnded          EventKind = "game_ended"
	EventChatMessage        EventKind = "chat_message"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type PlayerJoinedPayload struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Seat        int    `json:"seat"`
	Rejoined    bool   `json:"rejoined"`
}

type PlayerLeftPayload struct {
	UserID      string `json:"user_id"`
	Seat        int    `json:"seat"`
	ReplacedBot string `json:"replaced_bot,omitempty"`
}

type PlayerDisconnectedPayload struct {
	UserID       string `json:"user_id"`
	Seat         int    `json:"seat"`
	GraceSeconds int    `json:"grace_seconds"`
}

type GameStartedPayload struct {
	StartSeat   int             `json:"start_seat"`
	StartUserID string          `json:"start_user_id"`
	State       domain.Snapshot `json:"state"`
}

type StateUpdatePayload struct {
	State domain.Snapshot `json:"state"`
}

type GameEndedPayload struct {
	WinnerUserID string          `json:"winner_user_id"`
	WinningSet   []int           `json:"winning_set"`
	FinishOrder  []string        `json:"finish_order"`
	State        domain.Snapshot `json:"state"`
}

type ChatMessagePayload struct {
	MessageID   string `json:"message_id"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Text        string `json:"text"`
	SentAt      int64  `json:"sent_at"`
}
