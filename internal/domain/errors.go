package domain

import "errors"

var (
	// ErrRoomFull is returned when all four seats are occupied.
	ErrRoomFull = errors.New("room is full")
	// ErrInvalidState is returned when the room state does not allow the
	// requested action.
	ErrInvalidState = errors.New("room state does not allow this action")
	// ErrNotEnoughPlayers is returned when a game start is requested with
	// unfilled seats.
	ErrNotEnoughPlayers = errors.New("not enough players to start")
	// ErrNotPlayersTurn is returned when a pass comes from a seat other
	// than the current turn-holder.
	ErrNotPlayersTurn = errors.New("not this seat's turn")
	// ErrCardNotFound is returned when the passed card is not in the
	// sender's hand.
	ErrCardNotFound = errors.New("card not in hand")
	// ErrInvalidTarget is returned when the pass target is not a valid,
	// unfinished seat other than the sender.
	ErrInvalidTarget = errors.New("invalid target seat")
	// ErrUnknownSeat is returned when a seat index matches no player.
	ErrUnknownSeat = errors.New("seat not found")
)
