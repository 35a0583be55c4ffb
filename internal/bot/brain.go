package bot

import (
	"errors"

	"clashofcards/internal/domain"
)

// ErrEmptyHand is returned when a discard is requested from an empty hand.
var ErrEmptyHand = errors.New("cannot choose a card from an empty hand")

// ChooseCardToRelinquish picks the card a bot gives away on its turn using
// the deterministic heuristic: while the marker card is held, no card of its
// suit is relinquished; otherwise the discard comes from the suit with the
// lowest count in hand, lowest card id on ties. Always returns a card for a
// non-empty hand.
func ChooseCardToRelinquish(hand []domain.Card) (domain.Card, error) {
	return ChooseCardWithPreference(hand, "")
}

// ChooseCardWithPreference applies an optional advisory suit preference
// before falling back to the deterministic heuristic. The preference is
// ignored when it names the protected suit or a suit the hand does not hold.
func ChooseCardWithPreference(hand []domain.Card, preferred domain.Suit) (domain.Card, error) {
	if len(hand) == 0 {
		return domain.Card{}, ErrEmptyHand
	}

	var protected domain.Suit
	for _, c := range hand {
		if c.Special {
			protected = c.Suit
			break
		}
	}

	candidates := make([]domain.Card, 0, len(hand))
	for _, c := range hand {
		if protected != "" && c.Suit == protected {
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		// Whole hand is the protected suit; give up the lowest plain card,
		// and only part with the marker when nothing else is left.
		candidates = nonSpecial(hand)
		if len(candidates) == 0 {
			candidates = hand
		}
		return lowestID(candidates), nil
	}

	if preferred != "" && preferred != protected {
		fromPreferred := make([]domain.Card, 0, len(candidates))
		for _, c := range candidates {
			if c.Suit == preferred {
				fromPreferred = append(fromPreferred, c)
			}
		}
		if len(fromPreferred) > 0 {
			return lowestID(fromPreferred), nil
		}
	}

	counts := make(map[domain.Suit]int, len(domain.Suits))
	for _, c := range candidates {
		counts[c.Suit]++
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if counts[c.Suit] < counts[best.Suit] ||
			(counts[c.Suit] == counts[best.Suit] && c.ID < best.ID) {
			best = c
		}
	}
	return best, nil
}

func nonSpecial(hand []domain.Card) []domain.Card {
	out := make([]domain.Card, 0, len(hand))
	for _, c := range hand {
		if !c.Special {
			out = append(out, c)
		}
	}
	return out
}

func lowestID(cards []domain.Card) domain.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.ID < best.ID {
			best = c
		}
	}
	return best
}
