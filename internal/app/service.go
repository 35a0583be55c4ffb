package app

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"clashofcards/internal/domain"
)

var (
	ErrUnknownPlayer   = errors.New("player is not seated in this room")
	ErrEmptyChat       = errors.New("chat message is empty")
	ErrAlreadyStarted  = errors.New("game already started")
	ErrAlreadyFinished = errors.New("player has already finished")
	ErrNotHost         = errors.New("only the host can start the game")
)

// maxChatLength bounds relayed chat text; longer messages are truncated.
const maxChatLength = 256

// Service contains the card-passing use-cases operating on room state. It
// holds no room state itself; the match handler owns the Room and calls in
// from its single-threaded loop.
type Service struct{}

// NewService constructs a Service.
func NewService() *Service {
	return &Service{}
}

// Join seats a new player, or reconnects a known identity that dropped
// mid-game. Rejoining players receive a private state replay so their client
// can catch up.
func (s *Service) Join(room *domain.Room, userID, displayName string) ([]Event, error) {
	if existing := room.PlayerByUserID(userID); existing != nil {
		existing.Connected = true
		return []Event{
			{
				Kind: EventPlayerJoined,
				Payload: PlayerJoinedPayload{
					UserID:      existing.UserID,
					DisplayName: existing.DisplayName,
					Seat:        existing.Seat,
					Rejoined:    true,
				},
			},
			{
				Kind:       EventStateUpdate,
				Payload:    StateUpdatePayload{State: room.PublicState()},
				Recipients: []string{userID},
			},
		}, nil
	}

	p, err := room.AddPlayer(userID, displayName)
	if err != nil {
		return nil, err
	}
	return []Event{
		{
			Kind: EventPlayerJoined,
			Payload: PlayerJoinedPayload{
				UserID:      p.UserID,
				DisplayName: p.DisplayName,
				Seat:        p.Seat,
			},
		},
		{
			Kind:       EventStateUpdate,
			Payload:    StateUpdatePayload{State: room.PublicState()},
			Recipients: []string{userID},
		},
	}, nil
}

// AddBot seats a bot in a waiting room.
func (s *Service) AddBot(room *domain.Room, userID, displayName string) ([]Event, error) {
	p, err := room.AddBot(userID, displayName)
	if err != nil {
		return nil, err
	}
	return []Event{{
		Kind: EventPlayerJoined,
		Payload: PlayerJoinedPayload{
			UserID:      p.UserID,
			DisplayName: p.DisplayName,
			Seat:        p.Seat,
		},
	}}, nil
}

// Leave removes a player from a room that has not started. Mid-game
// departures go through MarkDisconnected and, after the grace period,
// ReplaceWithBot instead.
func (s *Service) Leave(room *domain.Room, userID string) ([]Event, error) {
	p := room.PlayerByUserID(userID)
	if p == nil {
		return nil, ErrUnknownPlayer
	}
	removed, err := room.RemovePlayer(p.Seat)
	if err != nil {
		return nil, err
	}
	return []Event{
		{
			Kind:    EventPlayerLeft,
			Payload: PlayerLeftPayload{UserID: removed.UserID, Seat: removed.Seat},
		},
		{
			// Seats renumber on removal, so everyone needs the new roster.
			Kind:    EventStateUpdate,
			Payload: StateUpdatePayload{State: room.PublicState()},
		},
	}, nil
}

// MarkDisconnected flags a seated human as dropped without vacating the
// seat. The caller schedules the grace deadline.
func (s *Service) MarkDisconnected(room *domain.Room, userID string, graceSeconds int) ([]Event, error) {
	p := room.PlayerByUserID(userID)
	if p == nil {
		return nil, ErrUnknownPlayer
	}
	p.Connected = false
	return []Event{{
		Kind: EventPlayerDisconnected,
		Payload: PlayerDisconnectedPayload{
			UserID:       p.UserID,
			Seat:         p.Seat,
			GraceSeconds: graceSeconds,
		},
	}}, nil
}

// ReplaceWithBot substitutes a bot for a seat whose human never came back.
// The seat keeps its hand and finish position so the game continues intact.
func (s *Service) ReplaceWithBot(room *domain.Room, seat int, botID, botName string) ([]Event, error) {
	vacated := room.PlayerAt(seat)
	if vacated == nil {
		return nil, domain.ErrUnknownSeat
	}
	left := vacated.UserID
	p, err := room.ConvertToBot(seat, botID, botName)
	if err != nil {
		return nil, err
	}
	return []Event{
		{
			Kind: EventPlayerLeft,
			Payload: PlayerLeftPayload{
				UserID:      left,
				Seat:        seat,
				ReplacedBot: p.UserID,
			},
		},
		{
			Kind:    EventStateUpdate,
			Payload: StateUpdatePayload{State: room.PublicState()},
		},
	}, nil
}

// StartGame deals hands and opens play. Only the host, the lowest-numbered
// human seat, may start.
func (s *Service) StartGame(room *domain.Room, actorUserID string) ([]Event, error) {
	if room.State != domain.StateWaiting {
		return nil, ErrAlreadyStarted
	}
	actor := room.PlayerByUserID(actorUserID)
	if actor == nil {
		return nil, ErrUnknownPlayer
	}
	if actor.Seat != hostSeat(room) {
		return nil, ErrNotHost
	}
	result, err := room.StartGame()
	if err != nil {
		return nil, err
	}
	return []Event{{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			StartSeat:   result.StartSeat,
			StartUserID: room.PlayerAt(result.StartSeat).UserID,
			State:       room.PublicState(),
		},
	}}, nil
}

// PassCard executes the actor's turn: one card moves to the chosen seat, and
// any resulting win ends up in the broadcast state.
func (s *Service) PassCard(room *domain.Room, actorUserID string, cardID, toSeat int) ([]Event, error) {
	actor := room.PlayerByUserID(actorUserID)
	if actor == nil {
		return nil, ErrUnknownPlayer
	}
	if actor.Finished() {
		return nil, ErrAlreadyFinished
	}
	result, err := room.PassCard(actor.Seat, cardID, toSeat)
	if err != nil {
		return nil, err
	}

	events := []Event{{
		Kind:    EventStateUpdate,
		Payload: StateUpdatePayload{State: room.PublicState()},
	}}
	if result.Ended {
		events = append(events, s.gameEnded(room))
	}
	return events, nil
}

// PassCardFromSeat is the bot-side entry point: bots act by seat, not by a
// session user id, and a seat substituted mid-game is always allowed to act.
func (s *Service) PassCardFromSeat(room *domain.Room, seat, cardID, toSeat int) ([]Event, error) {
	result, err := room.PassCard(seat, cardID, toSeat)
	if err != nil {
		return nil, err
	}
	events := []Event{{
		Kind:    EventStateUpdate,
		Payload: StateUpdatePayload{State: room.PublicState()},
	}}
	if result.Ended {
		events = append(events, s.gameEnded(room))
	}
	return events, nil
}

// Chat relays a table-talk line from a seated player to everyone.
func (s *Service) Chat(room *domain.Room, userID, text string) ([]Event, error) {
	p := room.PlayerByUserID(userID)
	if p == nil {
		return nil, ErrUnknownPlayer
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyChat
	}
	if len(text) > maxChatLength {
		cut := maxChatLength
		// Never split a multi-byte rune at the cut point.
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return []Event{{
		Kind: EventChatMessage,
		Payload: ChatMessagePayload{
			MessageID:   uuid.NewString(),
			UserID:      p.UserID,
			DisplayName: p.DisplayName,
			Text:        text,
			SentAt:      time.Now().Unix(),
		},
	}}, nil
}

// hostSeat is the lowest-numbered human seat, or -1 in an all-bot room.
func hostSeat(room *domain.Room) int {
	for _, p := range room.Players {
		if !p.IsBot {
			return p.Seat
		}
	}
	return -1
}

func (s *Service) gameEnded(room *domain.Room) Event {
	payload := GameEndedPayload{State: room.PublicState()}
	for _, p := range room.WinningPlayers {
		payload.FinishOrder = append(payload.FinishOrder, p.UserID)
	}
	if w := room.Winner(); w != nil {
		payload.WinnerUserID = w.UserID
		payload.WinningSet = append([]int(nil), w.WinningSet...)
	}
	return Event{Kind: EventGameEnded, Payload: payload}
}
