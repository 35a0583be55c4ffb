package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math/rand"
	"strconv"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"clashofcards/internal/app"
	"clashofcards/internal/bot"
	"clashofcards/internal/config"
	"clashofcards/internal/domain"
	"clashofcards/internal/ports"
)

// tickRate is the loop frequency in ticks per second. All deadlines below
// are expressed in ticks, so one tick equals one second.
const tickRate = 1

// endedLingerTicks keeps a finished match alive long enough for clients to
// render the final standings before the handler shuts down.
const endedLingerTicks = 5

// advisoryComment pairs a seat with an advisory suggestion fetched off-loop.
type advisoryComment struct {
	Seat       int
	Suggestion bot.Suggestion
}

// MatchState holds the authoritative runtime state for one room.
type MatchState struct {
	Room *domain.Room
	App  *app.Service

	Presences map[string]runtime.Presence
	Bots      map[string]*bot.Agent

	Tick int64

	BotsEnabled      bool
	BotMinDelay      int
	BotMaxDelay      int
	BotAutoFillDelay int
	GraceTicks       int

	// AutoStart begins play without a host action once every seat is taken.
	// Set for matchmade rooms, where nobody owns a start button.
	AutoStart bool

	// BotWaitUntil is the tick at which the current bot seat acts; zero when
	// no bot turn is pending.
	BotWaitUntil int64
	// AdviceRequested guards one advisory fetch per scheduled bot turn.
	AdviceRequested bool
	// LobbyWaitStart is the tick the under-staffed lobby timer began; zero
	// when not counting down.
	LobbyWaitStart int64
	// GraceDeadlines maps a disconnected user id to the tick at which the
	// seat is handed to a bot.
	GraceDeadlines map[string]int64
	// EndedAt is the tick the game reached its terminal state; zero before.
	EndedAt int64

	Advisor *bot.Advisor
	Results ports.ResultsPort

	advice  chan advisoryComment
	pending map[int]bot.Suggestion

	rng *rand.Rand
}

func (ms *MatchState) openSeats() int {
	return domain.NumSeats - len(ms.Room.Players)
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)

	minDelay, maxDelay := config.BotDelayBounds()
	state := &MatchState{
		Room:             domain.NewRoom(matchID, nil),
		App:              app.NewService(),
		Presences:        make(map[string]runtime.Presence),
		Bots:             make(map[string]*bot.Agent),
		BotMinDelay:      minDelay,
		BotMaxDelay:      maxDelay,
		BotAutoFillDelay: config.BotAutoFillDelaySeconds(),
		GraceTicks:       config.ReconnectGraceSeconds() * tickRate,
		GraceDeadlines:   make(map[string]int64),
		Advisor: bot.NewAdvisor(
			config.AdvisoryEndpoint(),
			config.AdvisoryIssuer(),
			config.AdvisorySecret(),
			time.Duration(config.AdvisoryTimeoutSeconds())*time.Second,
		),
		Results: NewStorageResultsAdapter(nk),
		advice:  make(chan advisoryComment, domain.NumSeats),
		pending: make(map[int]bot.Suggestion),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if v, ok := params["bots_enabled"].(bool); ok {
		state.BotsEnabled = v
	}
	if v, ok := params["quick_match"].(bool); ok {
		state.AutoStart = v
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["cards_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["cards_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil && i > 0 {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["cards_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil && i > 0 {
			state.BotMaxDelay = i
		}
	}
	if val, ok := env["cards_reconnect_grace_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil && i > 0 {
			state.GraceTicks = i * tickRate
		}
	}
	if state.BotMaxDelay < state.BotMinDelay {
		state.BotMaxDelay = state.BotMinDelay
	}

	return state, tickRate, mh.labelString(state, logger)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	room := matchState.Room

	// A known identity may always come back; the seat waits through the
	// grace period.
	if room.PlayerByUserID(presence.GetUserId()) != nil {
		return matchState, true, ""
	}

	switch room.State {
	case domain.StateEnded:
		return matchState, false, "match_finished"
	case domain.StateActive:
		return matchState, false, "match_in_progress"
	}

	if matchState.openSeats() <= 0 {
		return matchState, false, "match_full"
	}
	return matchState, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}
	matchState.Tick = tick

	for _, p := range presences {
		userID := p.GetUserId()
		matchState.Presences[userID] = p
		delete(matchState.GraceDeadlines, userID)

		displayName := p.GetUsername()
		events, err := matchState.App.Join(matchState.Room, userID, displayName)
		if err != nil {
			logger.Warn("MatchJoin: Could not seat user %s: %v", userID, err)
			dispatcher.MatchKick([]runtime.Presence{p})
			continue
		}
		mh.dispatchEvents(ctx, matchState, dispatcher, logger, events)
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}
	matchState.Tick = tick
	room := matchState.Room

	for _, p := range presences {
		userID := p.GetUserId()
		delete(matchState.Presences, userID)

		if room.PlayerByUserID(userID) == nil {
			continue
		}

		switch room.State {
		case domain.StateWaiting:
			events, err := matchState.App.Leave(room, userID)
			if err != nil {
				logger.Warn("MatchLeave: Could not remove user %s: %v", userID, err)
				continue
			}
			mh.dispatchEvents(ctx, matchState, dispatcher, logger, events)
		case domain.StateActive:
			grace := matchState.GraceTicks / tickRate
			events, err := matchState.App.MarkDisconnected(room, userID, grace)
			if err != nil {
				logger.Warn("MatchLeave: Could not mark user %s disconnected: %v", userID, err)
				continue
			}
			matchState.GraceDeadlines[userID] = tick + int64(matchState.GraceTicks)
			logger.Info("MatchLeave: User %s dropped mid-game, seat held until tick %d", userID, matchState.GraceDeadlines[userID])
			mh.dispatchEvents(ctx, matchState, dispatcher, logger, events)
		}
	}

	if room.HumanCount() == 0 && room.State != domain.StateActive {
		logger.Info("MatchLeave: No humans left, terminating match.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}
	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(ctx, matchState, dispatcher, logger, msg)
		case OpPassCard:
			mh.handlePassCard(ctx, matchState, dispatcher, logger, msg)
		case OpChatMessage:
			mh.handleChatMessage(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	mh.expireGracePeriods(ctx, matchState, dispatcher, logger)

	if matchState.BotsEnabled {
		mh.autoFillLobby(ctx, matchState, dispatcher, logger)
	}
	mh.autoStartWhenFull(ctx, matchState, dispatcher, logger)
	mh.drainAdvice(matchState)
	mh.processBotTurn(ctx, matchState, dispatcher, logger)

	if matchState.EndedAt != 0 && tick >= matchState.EndedAt+endedLingerTicks {
		logger.Info("MatchLoop: Game over, shutting down room %s.", matchState.Room.ID)
		return nil
	}
	if len(matchState.Presences) == 0 && matchState.Room.HumanCount() == 0 {
		return nil
	}

	return matchState
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminating with %ds notice", graceSeconds)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	events, err := state.App.StartGame(state.Room, msg.GetUserId())
	if errors.Is(err, domain.ErrNotEnoughPlayers) && state.BotsEnabled {
		// The host wants to play now; fill the empty seats instead of making
		// them wait out the lobby timer.
		if fillErr := mh.fillOpenSeatsWithBots(ctx, state, dispatcher, logger); fillErr == nil {
			events, err = state.App.StartGame(state.Room, msg.GetUserId())
		}
	}
	if err != nil {
		logger.Warn("StartGame: Rejected for %s: %v", msg.GetUserId(), err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), err)
		return
	}
	state.LobbyWaitStart = 0
	mh.updateLabel(state, dispatcher, logger)
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
	logger.Info("StartGame: Room %s started by %s.", state.Room.ID, msg.GetUserId())
}

func (mh *matchHandler) handlePassCard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	var req PassCardRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		logger.Warn("PassCard: Malformed request from %s: %v", msg.GetUserId(), err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), err)
		return
	}

	events, err := state.App.PassCard(state.Room, msg.GetUserId(), req.CardID, req.ToSeat)
	if err != nil {
		logger.Warn("PassCard: Rejected for %s (card=%d, to=%d): %v", msg.GetUserId(), req.CardID, req.ToSeat, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), err)
		return
	}
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
}

func (mh *matchHandler) handleChatMessage(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	var req ChatMessageRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		logger.Warn("Chat: Malformed request from %s: %v", msg.GetUserId(), err)
		return
	}

	events, err := state.App.Chat(state.Room, msg.GetUserId(), req.Text)
	if err != nil {
		logger.Warn("Chat: Rejected for %s: %v", msg.GetUserId(), err)
		return
	}
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
}

// expireGracePeriods hands seats whose humans never came back to bots.
func (mh *matchHandler) expireGracePeriods(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	for userID, deadline := range state.GraceDeadlines {
		if state.Tick < deadline {
			continue
		}
		delete(state.GraceDeadlines, userID)

		p := state.Room.PlayerByUserID(userID)
		if p == nil || p.Connected {
			continue
		}

		identity := bot.GetBotIdentity(p.Seat)
		events, err := state.App.ReplaceWithBot(state.Room, p.Seat, identity.UserID, identity.DisplayName)
		if err != nil {
			logger.Error("Grace: Could not substitute bot for %s: %v", userID, err)
			continue
		}
		agent, err := bot.NewAgent(identity.UserID)
		if err != nil {
			logger.Error("Grace: Could not create agent %s: %v", identity.UserID, err)
		} else {
			state.Bots[identity.UserID] = agent
		}
		logger.Info("Grace: Seat %d handed to bot %s after %s timed out.", p.Seat, identity.UserID, userID)
		mh.dispatchEvents(ctx, state, dispatcher, logger, events)

		if state.Room.HumanCount() == 0 && len(state.Presences) == 0 {
			// Nobody is watching; the loop's terminate check closes the room.
			return
		}
	}
}

// autoFillLobby seats bots after the under-staffed lobby delay, then starts
// the game on behalf of the first human.
func (mh *matchHandler) autoFillLobby(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	room := state.Room
	if room.State != domain.StateWaiting || room.HumanCount() == 0 || state.openSeats() == 0 {
		state.LobbyWaitStart = 0
		return
	}

	if state.LobbyWaitStart == 0 {
		state.LobbyWaitStart = state.Tick
		return
	}
	if state.Tick-state.LobbyWaitStart < int64(state.BotAutoFillDelay) {
		return
	}
	state.LobbyWaitStart = 0

	if err := mh.fillOpenSeatsWithBots(ctx, state, dispatcher, logger); err != nil {
		return
	}
	mh.updateLabel(state, dispatcher, logger)

	starter := firstHuman(room)
	if starter == nil {
		return
	}
	events, err := state.App.StartGame(room, starter.UserID)
	if err != nil {
		logger.Error("AutoFill: Could not start game: %v", err)
		return
	}
	mh.updateLabel(state, dispatcher, logger)
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
}

// fillOpenSeatsWithBots seats bots until the room is full and registers an
// agent for each one.
func (mh *matchHandler) fillOpenSeatsWithBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) error {
	room := state.Room
	for state.openSeats() > 0 {
		identity := bot.GetBotIdentity(len(room.Players))
		events, err := state.App.AddBot(room, identity.UserID, identity.DisplayName)
		if err != nil {
			logger.Error("AutoFill: Could not seat bot: %v", err)
			return err
		}
		if agent, err := bot.NewAgent(identity.UserID); err == nil {
			state.Bots[identity.UserID] = agent
		}
		logger.Info("AutoFill: Bot %s seated in room %s.", identity.UserID, room.ID)
		mh.dispatchEvents(ctx, state, dispatcher, logger, events)
	}
	return nil
}

// autoStartWhenFull begins play in matchmade rooms as soon as the last queued
// player takes a seat. Matchmade rooms have no host with a start button.
func (mh *matchHandler) autoStartWhenFull(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	room := state.Room
	if !state.AutoStart || room.State != domain.StateWaiting || state.openSeats() > 0 {
		return
	}
	starter := firstHuman(room)
	if starter == nil {
		return
	}
	events, err := state.App.StartGame(room, starter.UserID)
	if err != nil {
		logger.Error("AutoStart: Could not start full room %s: %v", room.ID, err)
		return
	}
	state.LobbyWaitStart = 0
	mh.updateLabel(state, dispatcher, logger)
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
	logger.Info("AutoStart: Room %s started with all seats taken.", room.ID)
}

func firstHuman(room *domain.Room) *domain.Player {
	for _, p := range room.Players {
		if !p.IsBot {
			return p
		}
	}
	return nil
}

// drainAdvice moves completed advisory fetches into the pending map.
func (mh *matchHandler) drainAdvice(state *MatchState) {
	for {
		select {
		case c := <-state.advice:
			state.pending[c.Seat] = c.Suggestion
		default:
			return
		}
	}
}

// processBotTurn runs the current bot seat once its scheduled tick arrives.
// The advisory fetch happens off-loop when the turn is scheduled so the loop
// never blocks on the network.
func (mh *matchHandler) processBotTurn(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	room := state.Room
	if room.State != domain.StateActive {
		return
	}

	seat := room.CurrentTurnSeat
	current := room.PlayerAt(seat)
	if current == nil || !current.IsBot {
		state.BotWaitUntil = 0
		state.AdviceRequested = false
		return
	}

	if state.BotWaitUntil == 0 {
		delay := state.BotMinDelay
		if state.BotMaxDelay > state.BotMinDelay {
			delay += state.rng.Intn(state.BotMaxDelay - state.BotMinDelay + 1)
		}
		state.BotWaitUntil = state.Tick + int64(delay)
		// Advice left over from an earlier turn describes a hand this seat no
		// longer holds.
		delete(state.pending, seat)
		if !state.AdviceRequested {
			state.AdviceRequested = true
			hand := append([]domain.Card(nil), current.Hand...)
			go func(seat int, hand []domain.Card) {
				suggestion, err := state.Advisor.SuggestDiscard(context.Background(), hand)
				if err != nil {
					return
				}
				select {
				case state.advice <- advisoryComment{Seat: seat, Suggestion: suggestion}:
				default:
				}
			}(seat, hand)
		}
		return
	}

	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0
	state.AdviceRequested = false

	agent, exists := state.Bots[current.UserID]
	if !exists {
		var err error
		agent, err = bot.NewAgent(current.UserID)
		if err != nil {
			logger.Error("BotTurn: Could not create agent for %s: %v", current.UserID, err)
			return
		}
		state.Bots[current.UserID] = agent
	}

	suggestion, advised := state.pending[seat]
	delete(state.pending, seat)

	var preferred domain.Suit
	if advised {
		preferred = suggestion.Suit
	}

	move, err := agent.Play(room, seat, preferred)
	if err != nil {
		logger.Error("BotTurn: Bot %s could not decide a move: %v", current.UserID, err)
		return
	}

	events, err := state.App.PassCardFromSeat(room, seat, move.CardID, move.ToSeat)
	if err != nil {
		logger.Error("BotTurn: Bot %s move rejected: %v", current.UserID, err)
		return
	}
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)

	if advised && suggestion.Comment != "" {
		if chat, err := state.App.Chat(room, current.UserID, suggestion.Comment); err == nil {
			mh.dispatchEvents(ctx, state, dispatcher, logger, chat)
		}
	}
}

// dispatchEvents converts app events into opcode broadcasts, and handles the
// game-over side effects.
func (mh *matchHandler) dispatchEvents(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		opCode, ok := opCodeFor(ev.Kind)
		if !ok {
			logger.Warn("Unknown event kind: %v", ev.Kind)
			continue
		}

		data, err := json.Marshal(ev.Payload)
		if err != nil {
			logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
			continue
		}

		var recipients []runtime.Presence
		if len(ev.Recipients) > 0 {
			for _, uid := range ev.Recipients {
				if p, ok := state.Presences[uid]; ok {
					recipients = append(recipients, p)
				}
			}
			// Targeted events must never widen to a broadcast when the
			// intended recipients are offline or bots.
			if len(recipients) == 0 {
				continue
			}
		}
		dispatcher.BroadcastMessage(opCode, data, recipients, nil, true)

		if ev.Kind == app.EventGameEnded {
			mh.onGameEnded(ctx, state, dispatcher, logger, ev.Payload.(app.GameEndedPayload))
		}
	}
}

func (mh *matchHandler) onGameEnded(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, payload app.GameEndedPayload) {
	state.EndedAt = state.Tick
	state.GraceDeadlines = make(map[string]int64)
	mh.updateLabel(state, dispatcher, logger)

	if state.Results == nil {
		return
	}
	result := ports.GameResult{
		RoomID:      state.Room.ID,
		WinnerID:    payload.WinnerUserID,
		FinishOrder: payload.FinishOrder,
		Rounds:      state.Room.Round,
	}
	if err := state.Results.RecordResult(ctx, result); err != nil {
		logger.Error("Failed to record game result for room %s: %v", state.Room.ID, err)
	}
}

func opCodeFor(kind app.EventKind) (int64, bool) {
	switch kind {
	case app.EventPlayerJoined:
		return OpPlayerJoined, true
	case app.EventPlayerLeft:
		return OpPlayerLeft, true
	case app.EventPlayerDisconnected:
		return OpPlayerDisconnected, true
	case app.EventGameStarted:
		return OpGameStarted, true
	case app.EventStateUpdate:
		return OpStateUpdate, true
	case app.EventGameEnded:
		return OpGameEnded, true
	case app.EventChatMessage:
		return OpChatRelay, true
	default:
		return 0, false
	}
}

// sendError reports a rejected request back to its sender only.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, cause error) {
	presence, ok := state.Presences[userID]
	if !ok {
		return
	}

	payload := GameErrorEvent{Code: errorCodeFor(cause), Message: cause.Error()}
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal error event: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpGameError, data, []runtime.Presence{presence}, nil, true)
}

func errorCodeFor(err error) int {
	switch {
	case err == nil:
		return 0
	case isDomainRejection(err):
		return 400
	default:
		return 500
	}
}

func isDomainRejection(err error) bool {
	for _, candidate := range []error{
		domain.ErrRoomFull,
		domain.ErrInvalidState,
		domain.ErrNotEnoughPlayers,
		domain.ErrNotPlayersTurn,
		domain.ErrCardNotFound,
		domain.ErrInvalidTarget,
		domain.ErrUnknownSeat,
		app.ErrUnknownPlayer,
		app.ErrEmptyChat,
		app.ErrAlreadyStarted,
		app.ErrAlreadyFinished,
		app.ErrNotHost,
	} {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}

func (mh *matchHandler) labelString(state *MatchState, logger runtime.Logger) string {
	phase := "lobby"
	switch state.Room.State {
	case domain.StateActive:
		phase = "playing"
	case domain.StateEnded:
		phase = "ended"
	}

	label := MatchLabel{
		Open:  state.openSeats(),
		Phase: phase,
		Game:  "clashofcards",
	}
	data, err := json.Marshal(label)
	if err != nil {
		logger.Error("Failed to marshal match label: %v", err)
		return "{}"
	}
	return string(data)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if err := dispatcher.MatchLabelUpdate(mh.labelString(state, logger)); err != nil {
		logger.Error("Failed to update match label: %v", err)
	}
}
