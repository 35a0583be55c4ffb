package domain

import (
	"reflect"
	"testing"
)

// cardsByID builds a hand from deck ids, using the canonical composition.
func cardsByID(ids ...int) []Card {
	byID := make(map[int]Card, DeckSize)
	for _, c := range NewDeck() {
		byID[c.ID] = c
	}
	hand := make([]Card, 0, len(ids))
	for _, id := range ids {
		hand = append(hand, byID[id])
	}
	return hand
}

func TestFindWinningSet(t *testing.T) {
	tests := []struct {
		name    string
		hand    []Card
		want    []int
		wantHit bool
	}{
		{
			name:    "MarkerPlusThreeSuitA",
			hand:    cardsByID(1, 2, 3, 4),
			want:    []int{1, 2, 3, 4},
			wantHit: true,
		},
		{
			name:    "FourOfSuitB",
			hand:    cardsByID(5, 6, 7, 8),
			want:    []int{5, 6, 7, 8},
			wantHit: true,
		},
		{
			name:    "FiveCardHandWithSetBuried",
			hand:    cardsByID(9, 13, 14, 15, 16),
			want:    []int{13, 14, 15, 16},
			wantHit: true,
		},
		{
			name:    "MarkerComboPreferredOverSuitSet",
			hand:    cardsByID(5, 6, 7, 8, 1, 2, 3, 4),
			want:    []int{1, 2, 3, 4},
			wantHit: true,
		},
		{
			name:    "MarkerAloneDoesNotWin",
			hand:    cardsByID(1, 5, 9, 13),
			wantHit: false,
		},
		{
			name:    "ThreeOfASuitIsNotEnough",
			hand:    cardsByID(5, 6, 7, 9),
			wantHit: false,
		},
		{
			name:    "PlainSuitAWithoutMarkerDoesNotWin",
			hand:    cardsByID(2, 3, 4, 9),
			wantHit: false,
		},
		{
			name:    "EmptyHand",
			hand:    nil,
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := FindWinningSet(tt.hand)
			if hit != tt.wantHit {
				t.Fatalf("FindWinningSet() hit = %t, want %t", hit, tt.wantHit)
			}
			if !hit {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FindWinningSet() = %v, want %v", got, tt.want)
			}

			inHand := make(map[int]bool, len(tt.hand))
			for _, c := range tt.hand {
				inHand[c.ID] = true
			}
			for _, id := range got {
				if !inHand[id] {
					t.Fatalf("returned id %d is not in the input hand", id)
				}
			}
		})
	}
}

func TestScanForWinner(t *testing.T) {
	players := []*Player{
		{Seat: 0, Hand: cardsByID(1, 5, 9, 13)},
		{Seat: 1, Hand: cardsByID(6, 7, 8, 2, 5)},
		{Seat: 2, Hand: cardsByID(13, 14, 15, 16)},
		{Seat: 3, Hand: cardsByID(3, 4, 10, 11)},
	}

	t.Run("NoWinnerBeforeRoundTwo", func(t *testing.T) {
		if p, _ := ScanForWinner(players, 1); p != nil {
			t.Fatalf("expected no winner in round 1, got seat %d", p.Seat)
		}
	})

	t.Run("FirstInSeatOrderWins", func(t *testing.T) {
		p, set := ScanForWinner(players, 2)
		if p == nil || p.Seat != 1 {
			t.Fatalf("expected seat 1 to win, got %+v", p)
		}
		if !reflect.DeepEqual(set, []int{5, 6, 7, 8}) {
			t.Fatalf("winning set = %v, want [5 6 7 8]", set)
		}
	})

	t.Run("FinishedSeatsAreSkipped", func(t *testing.T) {
		players[1].FinishPosition = 1
		defer func() { players[1].FinishPosition = 0 }()

		p, _ := ScanForWinner(players, 2)
		if p == nil || p.Seat != 2 {
			t.Fatalf("expected seat 2 to win once seat 1 finished, got %+v", p)
		}
	})
}
