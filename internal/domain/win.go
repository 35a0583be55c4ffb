package domain

import "sort"

// MinWinningRound is the first round in which a completed set counts. A set
// held during round 1 is ignored: the marker holder must have passed the
// card at least once around before anyone can finish.
const MinWinningRound = 2

// FindWinningSet reports the 4 card ids forming a winning set in the hand,
// if any. A hand wins with either the marker card plus at least 3 plain
// suit-A cards, or at least 4 cards of one non-A suit. The marker
// combination is preferred when both qualify; within a same-suit match the
// lowest 4 ids are reported so repeated scans of equal hands agree.
func FindWinningSet(hand []Card) ([]int, bool) {
	var markerID int
	var plainA []int
	bySuit := make(map[Suit][]int, len(Suits))

	for _, c := range hand {
		if c.Special {
			markerID = c.ID
			continue
		}
		if c.Suit == SuitA {
			plainA = append(plainA, c.ID)
			continue
		}
		bySuit[c.Suit] = append(bySuit[c.Suit], c.ID)
	}

	if markerID != 0 && len(plainA) >= HandSize-1 {
		sort.Ints(plainA)
		set := append([]int{markerID}, plainA[:HandSize-1]...)
		return set, true
	}

	for _, s := range Suits {
		ids := bySuit[s]
		if len(ids) < HandSize {
			continue
		}
		sort.Ints(ids)
		set := make([]int, HandSize)
		copy(set, ids[:HandSize])
		return set, true
	}

	return nil, false
}

// ScanForWinner returns the first unfinished player in seat order holding a
// winning set, together with the set, or nil when none qualifies or the
// round threshold has not been reached.
func ScanForWinner(players []*Player, round int) (*Player, []int) {
	if round < MinWinningRound {
		return nil, nil
	}
	for _, p := range players {
		if p.Finished() {
			continue
		}
		if set, ok := FindWinningSet(p.Hand); ok {
			return p, set
		}
	}
	return nil, nil
}
