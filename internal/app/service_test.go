package app

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clashofcards/internal/domain"
)

func newServiceAndRoom(t *testing.T, seed int64) (*Service, *domain.Room) {
	t.Helper()
	return NewService(), domain.NewRoom("room-1", rand.New(rand.NewSource(seed)))
}

func seatFour(t *testing.T, svc *Service, room *domain.Room) {
	t.Helper()
	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		_, err := svc.Join(room, "user-"+name, name)
		require.NoError(t, err)
	}
}

func eventKinds(events []Event) []EventKind {
	kinds := make([]EventKind, 0, len(events))
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

func TestJoin(t *testing.T) {
	svc, room := newServiceAndRoom(t, 1)

	events, err := svc.Join(room, "user-alice", "alice")
	require.NoError(t, err)
	require.Equal(t, []EventKind{EventPlayerJoined, EventStateUpdate}, eventKinds(events))

	joined := events[0].Payload.(PlayerJoinedPayload)
	assert.Equal(t, 0, joined.Seat)
	assert.False(t, joined.Rejoined)
	assert.Empty(t, events[0].Recipients, "join announcement is a broadcast")
	assert.Equal(t, []string{"user-alice"}, events[1].Recipients, "state replay is private")
}

func TestJoinReconnectsKnownIdentity(t *testing.T) {
	svc, room := newServiceAndRoom(t, 1)
	seatFour(t, svc, room)
	_, err := svc.StartGame(room, "user-alice")
	require.NoError(t, err)

	room.PlayerByUserID("user-bob").Connected = false

	events, err := svc.Join(room, "user-bob", "bob")
	require.NoError(t, err)
	require.Equal(t, []EventKind{EventPlayerJoined, EventStateUpdate}, eventKinds(events))
	assert.True(t, events[0].Payload.(PlayerJoinedPayload).Rejoined)
	assert.True(t, room.PlayerByUserID("user-bob").Connected)
	assert.Len(t, room.Players, domain.NumSeats, "rejoin must not take a new seat")
}

func TestJoinFullRoom(t *testing.T) {
	svc, room := newServiceAndRoom(t, 1)
	seatFour(t, svc, room)

	_, err := svc.Join(room, "user-eve", "eve")
	assert.ErrorIs(t, err, domain.ErrRoomFull)
}

func TestLeaveBeforeStart(t *testing.T) {
	svc, room := newServiceAndRoom(t, 1)
	_, err := svc.Join(room, "user-alice", "alice")
	require.NoError(t, err)
	_, err = svc.Join(room, "user-bob", "bob")
	require.NoError(t, err)

	events, err := svc.Leave(room, "user-alice")
	require.NoError(t, err)
	require.Equal(t, []EventKind{EventPlayerLeft, EventStateUpdate}, eventKinds(events))
	assert.Equal(t, 0, room.PlayerByUserID("user-bob").Seat, "remaining seats renumber")

	_, err = svc.Leave(room, "user-nobody")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestStartGame(t *testing.T) {
	svc, room := newServiceAndRoom(t, 7)
	seatFour(t, svc, room)

	events, err := svc.StartGame(room, "user-alice")
	require.NoError(t, err)
	require.Equal(t, []EventKind{EventGameStarted}, eventKinds(events))

	started := events[0].Payload.(GameStartedPayload)
	assert.Equal(t, room.CurrentTurnSeat, started.StartSeat)
	assert.Equal(t, room.PlayerAt(started.StartSeat).UserID, started.StartUserID)
	assert.Len(t, started.State.Players, domain.NumSeats)

	_, err = svc.StartGame(room, "user-alice")
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestStartGameValidation(t *testing.T) {
	svc, room := newServiceAndRoom(t, 7)
	_, err := svc.Join(room, "user-alice", "alice")
	require.NoError(t, err)

	_, err = svc.StartGame(room, "user-eve")
	assert.ErrorIs(t, err, ErrUnknownPlayer)

	_, err = svc.StartGame(room, "user-alice")
	assert.ErrorIs(t, err, domain.ErrNotEnoughPlayers)
}

func TestStartGameHostOnly(t *testing.T) {
	svc, room := newServiceAndRoom(t, 7)
	seatFour(t, svc, room)

	_, err := svc.StartGame(room, "user-bob")
	assert.ErrorIs(t, err, ErrNotHost)
	assert.Equal(t, domain.StateWaiting, room.State)
}

func TestPassCard(t *testing.T) {
	svc, room := newServiceAndRoom(t, 7)
	seatFour(t, svc, room)
	_, err := svc.StartGame(room, "user-alice")
	require.NoError(t, err)

	actor := room.PlayerAt(room.CurrentTurnSeat)
	target := room.NextActiveSeat(actor.Seat)
	card := actor.Hand[0]

	events, err := svc.PassCard(room, actor.UserID, card.ID, target)
	require.NoError(t, err)
	require.Equal(t, []EventKind{EventStateUpdate}, eventKinds(events))
	assert.False(t, actor.HoldsCard(card.ID))
	assert.Equal(t, target, room.CurrentTurnSeat)
}

func TestPassCardOutOfTurn(t *testing.T) {
	svc, room := newServiceAndRoom(t, 7)
	seatFour(t, svc, room)
	_, err := svc.StartGame(room, "user-alice")
	require.NoError(t, err)

	bystander := room.PlayerAt(room.NextActiveSeat(room.CurrentTurnSeat))
	_, err = svc.PassCard(room, bystander.UserID, bystander.Hand[0].ID, 0)
	assert.ErrorIs(t, err, domain.ErrNotPlayersTurn)

	_, err = svc.PassCard(room, "user-eve", 1, 0)
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestPassCardEndsGame(t *testing.T) {
	svc, room := newServiceAndRoom(t, 7)
	seatFour(t, svc, room)
	_, err := svc.StartGame(room, "user-alice")
	require.NoError(t, err)

	deck := domain.NewDeck()
	byID := make(map[int]domain.Card, len(deck))
	for _, c := range deck {
		byID[c.ID] = c
	}
	hands := [][]int{{1, 8, 9, 13}, {5, 6, 7, 14}, {2, 10, 11, 15}, {3, 4, 12, 16}}
	for seat, ids := range hands {
		p := room.PlayerAt(seat)
		p.Hand = p.Hand[:0]
		for _, id := range ids {
			p.Hand = append(p.Hand, byID[id])
		}
	}
	for i, seat := range []int{2, 3} {
		p := room.PlayerAt(seat)
		p.FinishPosition = i + 1
		room.WinningPlayers = append(room.WinningPlayers, p)
		room.FinishedPositions = append(room.FinishedPositions, i+1)
	}
	room.Round = domain.MinWinningRound
	room.CurrentTurnSeat = 0

	// Seat 0 hands seat 1 the last card of suit B; seat 1 finishes third
	// and seat 0 takes the automatic final place, ending the game.
	events, err := svc.PassCard(room, room.PlayerAt(0).UserID, 8, 1)
	require.NoError(t, err)
	require.Equal(t, []EventKind{EventStateUpdate, EventGameEnded}, eventKinds(events))

	ended := events[1].Payload.(GameEndedPayload)
	assert.Len(t, ended.FinishOrder, domain.NumSeats)
	assert.Equal(t, domain.StateEnded, room.State)
}

func TestDisconnectAndBotSubstitution(t *testing.T) {
	svc, room := newServiceAndRoom(t, 7)
	seatFour(t, svc, room)
	_, err := svc.StartGame(room, "user-alice")
	require.NoError(t, err)

	events, err := svc.MarkDisconnected(room, "user-bob", 60)
	require.NoError(t, err)
	require.Equal(t, []EventKind{EventPlayerDisconnected}, eventKinds(events))
	assert.Equal(t, 60, events[0].Payload.(PlayerDisconnectedPayload).GraceSeconds)
	assert.False(t, room.PlayerByUserID("user-bob").Connected)

	seat := room.PlayerByUserID("user-bob").Seat
	handBefore := append([]domain.Card(nil), room.PlayerAt(seat).Hand...)

	events, err = svc.ReplaceWithBot(room, seat, "bot-0", "AI Player 1")
	require.NoError(t, err)
	require.Equal(t, []EventKind{EventPlayerLeft, EventStateUpdate}, eventKinds(events))

	left := events[0].Payload.(PlayerLeftPayload)
	assert.Equal(t, "user-bob", left.UserID)
	assert.Equal(t, "bot-0", left.ReplacedBot)

	p := room.PlayerAt(seat)
	assert.True(t, p.IsBot)
	assert.Equal(t, handBefore, p.Hand, "substituted seat keeps its hand")
}

func TestChat(t *testing.T) {
	svc, room := newServiceAndRoom(t, 1)
	_, err := svc.Join(room, "user-alice", "alice")
	require.NoError(t, err)

	events, err := svc.Chat(room, "user-alice", "  good luck  ")
	require.NoError(t, err)
	require.Equal(t, []EventKind{EventChatMessage}, eventKinds(events))

	msg := events[0].Payload.(ChatMessagePayload)
	assert.NotEmpty(t, msg.MessageID)
	assert.Equal(t, "good luck", msg.Text)
	assert.Equal(t, "alice", msg.DisplayName)

	_, err = svc.Chat(room, "user-alice", "   ")
	assert.ErrorIs(t, err, ErrEmptyChat)

	_, err = svc.Chat(room, "user-eve", "hi")
	assert.ErrorIs(t, err, ErrUnknownPlayer)

	long, err := svc.Chat(room, "user-alice", strings.Repeat("x", 1000))
	require.NoError(t, err)
	assert.Len(t, long[0].Payload.(ChatMessagePayload).Text, maxChatLength)
}

func TestChatTruncationKeepsRunesIntact(t *testing.T) {
	svc, room := newServiceAndRoom(t, 1)
	_, err := svc.Join(room, "user-alice", "alice")
	require.NoError(t, err)

	// Three-byte runes never align with the byte limit, so a naive cut
	// would leave a partial rune at the tail.
	events, err := svc.Chat(room, "user-alice", strings.Repeat("→", 100))
	require.NoError(t, err)

	text := events[0].Payload.(ChatMessagePayload).Text
	assert.LessOrEqual(t, len(text), maxChatLength)
	assert.True(t, utf8.ValidString(text))
	assert.Equal(t, 0, len(text)%len("→"), "truncated text should hold whole runes only")
}
