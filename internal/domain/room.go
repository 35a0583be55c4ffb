package domain

import (
	"math/rand"
	"time"
)

// State represents the lifecycle stage of a room.
type State string

const (
	// StateWaiting is the pre-game state where players can join.
	StateWaiting State = "waiting"
	// StateActive is the in-game state where cards are passed.
	StateActive State = "active"
	// StateEnded is the terminal state; a room is never reused after it.
	StateEnded State = "ended"
)

// Player holds the authoritative state for one seat. Hand, WinningSet and
// FinishPosition are mutated only by the owning Room.
type Player struct {
	UserID      string
	DisplayName string
	Seat        int // 0-based; contiguous, renumbered on removal
	IsBot       bool
	Connected   bool // false for bots and for seats inside a grace period

	Hand           []Card
	WinningSet     []int // 4 card ids once the player has completed a set
	FinishPosition int   // 1..4, zero until assigned
}

// Finished reports whether the player has been assigned a finish position.
func (p *Player) Finished() bool {
	return p.FinishPosition != 0
}

// HoldsCard reports whether the card id is in the player's hand.
func (p *Player) HoldsCard(cardID int) bool {
	for _, c := range p.Hand {
		if c.ID == cardID {
			return true
		}
	}
	return false
}

// Room is the authoritative per-room state machine: roster, hands, turn
// pointer, round counter and placement resolution. All mutations must be
// serialized by the caller; the room itself holds no locks.
type Room struct {
	ID    string
	State State

	Players []*Player // seat order == join order

	CurrentTurnSeat int
	Round           int
	RoundAnchorSeat int // seat dealt the marker; anchors round counting

	WinningPlayers    []*Player // in finishing order
	FinishedPositions []int

	rng *rand.Rand
}

// NewRoom constructs an empty waiting room. A nil rng falls back to a
// time-seeded source.
func NewRoom(id string, rng *rand.Rand) *Room {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Room{
		ID:              id,
		State:           StateWaiting,
		Players:         make([]*Player, 0, NumSeats),
		CurrentTurnSeat: -1,
		RoundAnchorSeat: -1,
		rng:             rng,
	}
}

// AddPlayer seats a human at the next free seat.
func (r *Room) AddPlayer(userID, displayName string) (*Player, error) {
	return r.addSeat(userID, displayName, false)
}

// AddBot seats a bot at the next free seat. Bots carry no connection.
func (r *Room) AddBot(userID, displayName string) (*Player, error) {
	return r.addSeat(userID, displayName, true)
}

func (r *Room) addSeat(userID, displayName string, isBot bool) (*Player, error) {
	if r.State != StateWaiting {
		return nil, ErrInvalidState
	}
	if len(r.Players) >= NumSeats {
		return nil, ErrRoomFull
	}
	p := &Player{
		UserID:      userID,
		DisplayName: displayName,
		Seat:        len(r.Players),
		IsBot:       isBot,
		Connected:   !isBot,
	}
	r.Players = append(r.Players, p)
	return p, nil
}

// PlayerAt returns the player at the seat, or nil when out of range.
func (r *Room) PlayerAt(seat int) *Player {
	if seat < 0 || seat >= len(r.Players) {
		return nil
	}
	return r.Players[seat]
}

// PlayerByUserID returns the seated player with the given user id, or nil.
func (r *Room) PlayerByUserID(userID string) *Player {
	for _, p := range r.Players {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// HumanCount returns the number of seats held by humans, connected or not.
func (r *Room) HumanCount() int {
	n := 0
	for _, p := range r.Players {
		if !p.IsBot {
			n++
		}
	}
	return n
}

// RemovePlayer removes a seat entirely and renumbers the remaining seats
// contiguously from 0. Seat indexes are therefore not stable across a
// removal; broadcasts after one carry fresh seat numbers. Only waiting
// rooms shrink: a vacancy after the deal goes through ConvertToBot so the
// deck partition stays intact.
func (r *Room) RemovePlayer(seat int) (*Player, error) {
	if r.State != StateWaiting {
		return nil, ErrInvalidState
	}
	removed := r.PlayerAt(seat)
	if removed == nil {
		return nil, ErrUnknownSeat
	}
	r.Players = append(r.Players[:seat], r.Players[seat+1:]...)
	for i, p := range r.Players {
		p.Seat = i
	}
	return removed, nil
}

// ConvertToBot hands an active seat over to a bot in place: the hand, seat
// index and any finish position are retained so the deck partition
// invariant survives a mid-game vacancy.
func (r *Room) ConvertToBot(seat int, userID, displayName string) (*Player, error) {
	if r.State != StateActive {
		return nil, ErrInvalidState
	}
	p := r.PlayerAt(seat)
	if p == nil {
		return nil, ErrUnknownSeat
	}
	p.UserID = userID
	p.DisplayName = displayName
	p.IsBot = true
	p.Connected = false
	return p, nil
}

// StartResult reports the outcome of a successful game start.
type StartResult struct {
	StartSeat int
}

// StartGame deals the full shuffled deck, 4 cards per seat, and activates
// the room. The seat that received the marker card becomes the first
// turn-holder and the round anchor, with the round counter at 1.
func (r *Room) StartGame() (StartResult, error) {
	if r.State != StateWaiting {
		return StartResult{}, ErrInvalidState
	}
	if len(r.Players) < NumSeats {
		return StartResult{}, ErrNotEnoughPlayers
	}

	hands, markerSeat := Deal(r.rng)
	for seat, p := range r.Players {
		p.Hand = hands[seat]
		p.WinningSet = nil
		p.FinishPosition = 0
	}

	r.State = StateActive
	r.Round = 1
	r.CurrentTurnSeat = markerSeat
	r.RoundAnchorSeat = markerSeat
	r.WinningPlayers = nil
	r.FinishedPositions = nil

	return StartResult{StartSeat: markerSeat}, nil
}

// PassResult reports the outcome of a successful card pass.
type PassResult struct {
	Card     Card
	FromSeat int
	ToSeat   int
	NewRound bool
	// Finished lists players assigned a finish position by this pass, in
	// position order. The auto-assigned 4th place appears here too.
	Finished []*Player
	Ended    bool
}

// PassCard moves one card from the turn-holder to another active seat,
// advances the turn pointer to the receiver, bumps the round counter when
// the receiver is the round anchor, and then resolves any newly completed
// winning set.
func (r *Room) PassCard(fromSeat, cardID, toSeat int) (PassResult, error) {
	if r.State != StateActive {
		return PassResult{}, ErrInvalidState
	}
	if fromSeat != r.CurrentTurnSeat {
		return PassResult{}, ErrNotPlayersTurn
	}
	from := r.PlayerAt(fromSeat)
	if from == nil || !from.HoldsCard(cardID) {
		return PassResult{}, ErrCardNotFound
	}
	to := r.PlayerAt(toSeat)
	if to == nil || toSeat == fromSeat || to.Finished() {
		return PassResult{}, ErrInvalidTarget
	}

	var card Card
	for i, c := range from.Hand {
		if c.ID == cardID {
			card = c
			from.Hand = append(from.Hand[:i], from.Hand[i+1:]...)
			break
		}
	}
	to.Hand = append(to.Hand, card)

	r.CurrentTurnSeat = toSeat
	newRound := toSeat == r.RoundAnchorSeat
	if newRound {
		r.Round++
	}

	result := PassResult{
		Card:     card,
		FromSeat: fromSeat,
		ToSeat:   toSeat,
		NewRound: newRound,
	}
	result.Finished, result.Ended = r.resolveWinners()
	return result, nil
}

// resolveWinners runs the win scan over unfinished seats and applies the
// placement policy: sequential positions, auto-assigned 4th place once
// three finishers exist, and a turn pointer that skips finished seats.
func (r *Room) resolveWinners() (finished []*Player, ended bool) {
	winner, set := ScanForWinner(r.Players, r.Round)
	if winner == nil {
		return nil, false
	}

	winner.WinningSet = set
	r.assignPosition(winner)
	finished = append(finished, winner)

	if len(r.WinningPlayers) == NumSeats-1 {
		// One active seat left: it takes 4th place without acting.
		for _, p := range r.Players {
			if !p.Finished() {
				r.assignPosition(p)
				finished = append(finished, p)
			}
		}
	}

	if len(r.WinningPlayers) >= NumSeats {
		r.State = StateEnded
		return finished, true
	}

	if cur := r.PlayerAt(r.CurrentTurnSeat); cur != nil && cur.Finished() {
		r.CurrentTurnSeat = r.NextActiveSeat(r.CurrentTurnSeat)
	}
	return finished, false
}

func (r *Room) assignPosition(p *Player) {
	pos := len(r.WinningPlayers) + 1
	p.FinishPosition = pos
	r.WinningPlayers = append(r.WinningPlayers, p)
	r.FinishedPositions = append(r.FinishedPositions, pos)
}

// Winner returns the headline winner (first finisher), or nil.
func (r *Room) Winner() *Player {
	if len(r.WinningPlayers) == 0 {
		return nil
	}
	return r.WinningPlayers[0]
}

// NextActiveSeat returns the next seat after the given one, wrapping, that
// has not yet finished. Finished seats never receive turns again. Returns
// the input seat when no other active seat exists.
func (r *Room) NextActiveSeat(after int) int {
	n := len(r.Players)
	if n == 0 {
		return after
	}
	for i := 1; i <= n; i++ {
		seat := ((after+i)%n + n) % n
		if p := r.Players[seat]; p != nil && !p.Finished() {
			return seat
		}
	}
	return after
}
