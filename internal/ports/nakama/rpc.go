package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"clashofcards/internal/config"
)

// RegisterRPCs registers the matchmaking RPC endpoints. The quick-match
// queue outlives individual RPC calls, so it captures the module handle for
// its timeout flush.
func RegisterRPCs(initializer runtime.Initializer, nk runtime.NakamaModule, logger runtime.Logger) error {
	queue := NewQuickMatchQueue(
		time.Duration(config.QueueTimeoutSeconds())*time.Second,
		newMatchLauncher(nk, logger),
	)

	if err := initializer.RegisterRpc(RpcQuickMatch, rpcQuickMatch(queue)); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcCreateRoom, rpcCreateRoom)
}

// newMatchLauncher creates the room and tells every queued player where to
// go. Players a launch fails to notify can still quick-match again.
func newMatchLauncher(nk runtime.NakamaModule, logger runtime.Logger) matchLauncher {
	return func(userIDs []string, botsEnabled bool) {
		ctx := context.Background()

		matchID, err := nk.MatchCreate(ctx, MatchName, map[string]interface{}{
			"bots_enabled": botsEnabled,
			"quick_match":  true,
		})
		if err != nil {
			logger.Error("QuickMatch: MatchCreate failed for %d players: %v", len(userIDs), err)
			return
		}
		logger.Info("QuickMatch: Created match %s for %d players (bots=%v)", matchID, len(userIDs), botsEnabled)

		content := map[string]interface{}{"match_id": matchID}
		for _, userID := range userIDs {
			if err := nk.NotificationSend(ctx, userID, "Match found", content, NotificationMatchFound, "", false); err != nil {
				logger.Error("QuickMatch: Could not notify %s: %v", userID, err)
			}
		}
	}
}

func rpcQuickMatch(queue *QuickMatchQueue) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if !ok || userID == "" {
			return "", runtime.NewError("quick_match requires an authenticated user", 16)
		}

		queue.Add(userID)
		logger.Debug("QuickMatch: User %s queued (%d waiting)", userID, queue.Len())

		resp, err := json.Marshal(QuickMatchResponse{Queued: true})
		if err != nil {
			return "", runtime.NewError("failed to encode response", 13)
		}
		return string(resp), nil
	}
}

// rpcCreateRoom opens a private room; the caller shares the match id out of
// band. Bots stay out unless the request opts in.
func rpcCreateRoom(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req CreateRoomRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("malformed create_room payload", 3)
		}
	}

	matchID, err := nk.MatchCreate(ctx, MatchName, map[string]interface{}{
		"bots_enabled": req.WithBots,
	})
	if err != nil {
		logger.Error("CreateRoom [User:%s]: MatchCreate failed: %v", userID, err)
		return "", runtime.NewError("failed to create room", 13)
	}
	logger.Info("CreateRoom [User:%s]: Created match %s", userID, matchID)

	resp, err := json.Marshal(CreateRoomResponse{MatchID: matchID})
	if err != nil {
		return "", runtime.NewError("failed to encode response", 13)
	}
	return string(resp), nil
}
