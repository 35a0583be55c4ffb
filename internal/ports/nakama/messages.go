package nakama

// Client request payloads, JSON-encoded in match data messages.

// PassCardRequest asks the server to move one card from the sender's hand to
// another seat.
type PassCardRequest struct {
	CardID int `json:"card_id"`
	ToSeat int `json:"to_seat"`
}

// ChatMessageRequest carries a table-talk line from the sender.
type ChatMessageRequest struct {
	Text string `json:"text"`
}

// GameErrorEvent is sent privately to a player whose request was rejected.
type GameErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MatchLabel is the JSON label Nakama indexes for matchmaking queries.
type MatchLabel struct {
	Open  int    `json:"open"`
	Phase string `json:"phase"`
	Game  string `json:"game"`
}

// CreateRoomRequest is the optional payload of the create_room RPC.
type CreateRoomRequest struct {
	WithBots bool `json:"with_bots"`
}

// CreateRoomResponse is returned by the create_room RPC.
type CreateRoomResponse struct {
	MatchID string `json:"match_id"`
}

// QuickMatchResponse is returned by the quick_match RPC. Queued is true when
// the caller is still waiting for more players; the match id then arrives by
// notification.
type QuickMatchResponse struct {
	Queued  bool   `json:"queued"`
	MatchID string `json:"match_id,omitempty"`
}
