package bot

import (
	"clashofcards/internal/domain"
)

// PassMove is the pass a bot has decided on.
type PassMove struct {
	CardID int
	ToSeat int
}

// Agent represents an autonomous bot occupying a seat.
type Agent struct {
	ID   string
	Name string
}

// NewAgent constructs an agent for the given bot user id.
func NewAgent(userID string) (*Agent, error) {
	name := GetBotDisplayName(userID)
	if name == "" {
		name = userID
	}
	return &Agent{ID: userID, Name: name}, nil
}

// Play decides the bot's pass for its current turn: the relinquished card
// comes from the heuristic (optionally biased by an advisory suit
// preference) and the target is the next active seat after the bot.
func (a *Agent) Play(room *domain.Room, seat int, preferred domain.Suit) (PassMove, error) {
	p := room.PlayerAt(seat)
	if p == nil {
		return PassMove{}, domain.ErrUnknownSeat
	}
	card, err := ChooseCardWithPreference(p.Hand, preferred)
	if err != nil {
		return PassMove{}, err
	}
	return PassMove{CardID: card.ID, ToSeat: room.NextActiveSeat(seat)}, nil
}
