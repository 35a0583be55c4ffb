package domain

// PlayerSnapshot is the broadcast projection of one seat. Hands are included
// for every seat: the protocol trusts admitted clients and leaves opponent
// hand hiding to the presentation layer.
type PlayerSnapshot struct {
	UserID         string `json:"user_id"`
	DisplayName    string `json:"display_name"`
	Seat           int    `json:"seat"`
	IsBot          bool   `json:"is_bot"`
	Connected      bool   `json:"connected"`
	Hand           []Card `json:"hand"`
	WinningSet     []int  `json:"winning_set,omitempty"`
	FinishPosition int    `json:"finish_position,omitempty"`
}

// Snapshot is the full public room state broadcast after every mutation.
type Snapshot struct {
	RoomID            string           `json:"room_id"`
	State             State            `json:"state"`
	Players           []PlayerSnapshot `json:"players"`
	CurrentTurnSeat   int              `json:"current_turn_seat"`
	Round             int              `json:"round"`
	RoundAnchorSeat   int              `json:"round_anchor_seat"`
	Winner            string           `json:"winner,omitempty"` // user id of the first finisher
	WinningOrder      []string         `json:"winning_order,omitempty"`
	FinishedPositions []int            `json:"finished_positions,omitempty"`
}

// PublicState builds the broadcast projection of the room.
func (r *Room) PublicState() Snapshot {
	snap := Snapshot{
		RoomID:          r.ID,
		State:           r.State,
		Players:         make([]PlayerSnapshot, 0, len(r.Players)),
		CurrentTurnSeat: r.CurrentTurnSeat,
		Round:           r.Round,
		RoundAnchorSeat: r.RoundAnchorSeat,
	}
	for _, p := range r.Players {
		hand := make([]Card, len(p.Hand))
		copy(hand, p.Hand)
		snap.Players = append(snap.Players, PlayerSnapshot{
			UserID:         p.UserID,
			DisplayName:    p.DisplayName,
			Seat:           p.Seat,
			IsBot:          p.IsBot,
			Connected:      p.Connected,
			Hand:           hand,
			WinningSet:     append([]int(nil), p.WinningSet...),
			FinishPosition: p.FinishPosition,
		})
	}
	if w := r.Winner(); w != nil {
		snap.Winner = w.UserID
	}
	for _, p := range r.WinningPlayers {
		snap.WinningOrder = append(snap.WinningOrder, p.UserID)
	}
	snap.FinishedPositions = append([]int(nil), r.FinishedPositions...)
	return snap
}
