package domain

import "math/rand"

// Suit identifies one of the four card families in the deck.
type Suit string

const (
	SuitA Suit = "A"
	SuitB Suit = "B"
	SuitC Suit = "C"
	SuitD Suit = "D"
)

// Suits lists all suits in canonical deck order.
var Suits = []Suit{SuitA, SuitB, SuitC, SuitD}

const (
	// NumSeats is the fixed player count for a room.
	NumSeats = 4
	// HandSize is the number of cards dealt to each seat.
	HandSize = 4
	// DeckSize is the total card count in a deck instance.
	DeckSize = NumSeats * HandSize
	// MarkerCardID is the id of the single special card in suit A.
	MarkerCardID = 1
)

// Card is a single card in the 16-card deck. Ids are unique within a deck
// instance and never duplicated across hands.
type Card struct {
	ID      int  `json:"id"`
	Suit    Suit `json:"suit"`
	Special bool `json:"special"`
}

// NewDeck returns the fixed 16-card composition with deterministic ids 1..16.
// Card 1 is the marker: special, suit A. Suit A then holds ids 2..4, suit B
// 5..8, suit C 9..12, suit D 13..16.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	id := 1
	for _, s := range Suits {
		for i := 0; i < HandSize; i++ {
			deck = append(deck, Card{
				ID:      id,
				Suit:    s,
				Special: id == MarkerCardID,
			})
			id++
		}
	}
	return deck
}

// Shuffle permutes the deck in place with a Fisher-Yates walk. Every
// permutation is equally likely for a uniform rng source.
func Shuffle(rng *rand.Rand, deck []Card) {
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// Deal shuffles a fresh deck and partitions it 4 cards per seat in seat
// order: seat i receives slice [4i, 4i+4). It returns the hands and the seat
// holding the marker card, which becomes the starting turn-holder.
func Deal(rng *rand.Rand) (hands [][]Card, markerSeat int) {
	deck := NewDeck()
	Shuffle(rng, deck)

	hands = make([][]Card, NumSeats)
	markerSeat = -1
	for seat := 0; seat < NumSeats; seat++ {
		hand := make([]Card, HandSize)
		copy(hand, deck[seat*HandSize:(seat+1)*HandSize])
		hands[seat] = hand
		for _, c := range hand {
			if c.ID == MarkerCardID {
				markerSeat = seat
			}
		}
	}
	return hands, markerSeat
}
