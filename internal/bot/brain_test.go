package bot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clashofcards/internal/domain"
)

func handByID(t *testing.T, ids ...int) []domain.Card {
	t.Helper()
	byID := make(map[int]domain.Card, domain.DeckSize)
	for _, c := range domain.NewDeck() {
		byID[c.ID] = c
	}
	hand := make([]domain.Card, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		require.True(t, ok, "unknown card id %d", id)
		hand = append(hand, c)
	}
	return hand
}

func TestChooseCardToRelinquish(t *testing.T) {
	tests := []struct {
		name string
		hand []int
		want int
	}{
		{
			name: "MarkerProtectsItsSuit",
			hand: []int{1, 2, 5, 9},
			want: 5, // suits B and C tie at one card each; lowest id wins
		},
		{
			name: "LowestCountSuitLoses",
			hand: []int{5, 6, 9, 13},
			want: 9, // B has two cards, C and D one each; lowest id among C/D
		},
		{
			name: "TieBrokenByLowestID",
			hand: []int{6, 10, 14, 16},
			want: 6, // B and C tie at one card each below D's two; lowest id wins
		},
		{
			name: "AllProtectedFallsBackToPlainCard",
			hand: []int{1, 2, 3, 4},
			want: 2,
		},
		{
			name: "MarkerAloneIsRelinquishedLast",
			hand: []int{1},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := ChooseCardToRelinquish(handByID(t, tt.hand...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, card.ID)
		})
	}
}

func TestChooseCardToRelinquishEmptyHand(t *testing.T) {
	_, err := ChooseCardToRelinquish(nil)
	assert.ErrorIs(t, err, ErrEmptyHand)
}

func TestChooseCardWithPreference(t *testing.T) {
	t.Run("PreferenceHonored", func(t *testing.T) {
		card, err := ChooseCardWithPreference(handByID(t, 5, 6, 9, 13), domain.SuitD)
		require.NoError(t, err)
		assert.Equal(t, 13, card.ID)
	})

	t.Run("ProtectedPreferenceIgnored", func(t *testing.T) {
		card, err := ChooseCardWithPreference(handByID(t, 1, 2, 5, 9), domain.SuitA)
		require.NoError(t, err)
		assert.Equal(t, 5, card.ID)
	})

	t.Run("AbsentSuitIgnored", func(t *testing.T) {
		card, err := ChooseCardWithPreference(handByID(t, 5, 6, 9, 13), domain.SuitA)
		require.NoError(t, err)
		assert.Equal(t, 9, card.ID)
	})
}

// The heuristic must return a card from the hand for any non-empty input.
func TestChooseCardAlwaysValid(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	deck := domain.NewDeck()

	for trial := 0; trial < 200; trial++ {
		domain.Shuffle(rng, deck)
		size := 1 + rng.Intn(5)
		hand := append([]domain.Card(nil), deck[:size]...)

		card, err := ChooseCardToRelinquish(hand)
		require.NoError(t, err)

		found := false
		for _, c := range hand {
			if c.ID == card.ID {
				found = true
			}
		}
		assert.True(t, found, "chosen card %d not in hand %v", card.ID, hand)
	}
}

func TestAgentPlay(t *testing.T) {
	room := domain.NewRoom("room-1", rand.New(rand.NewSource(4)))
	for i := 0; i < domain.NumSeats; i++ {
		_, err := room.AddBot(GetBotIdentity(i).UserID, GetBotIdentity(i).DisplayName)
		require.NoError(t, err)
	}
	_, err := room.StartGame()
	require.NoError(t, err)

	agent, err := NewAgent(GetBotIdentity(1).UserID)
	require.NoError(t, err)

	move, err := agent.Play(room, 1, "")
	require.NoError(t, err)
	assert.True(t, room.PlayerAt(1).HoldsCard(move.CardID))
	assert.Equal(t, 2, move.ToSeat, "target should be the next active seat after the bot")

	_, err = agent.Play(room, 9, "")
	assert.ErrorIs(t, err, domain.ErrUnknownSeat)
}
