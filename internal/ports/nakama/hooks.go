package nakama

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// AfterAuthenticateDevice seeds a readable display name for brand new
// accounts so their seat never shows up blank at the table.
func AfterAuthenticateDevice(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session, in *api.AuthenticateDeviceRequest) error {
	if !out.Created {
		return nil
	}

	userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if !ok || userID == "" {
		logger.Warn("AfterAuthenticateDevice: No user id in context, skipping profile seed.")
		return nil
	}

	displayName := fmt.Sprintf("Player-%.8s", userID)
	if err := nk.AccountUpdateId(ctx, userID, "", nil, displayName, "", "", "", ""); err != nil {
		logger.Error("AfterAuthenticateDevice: Could not seed profile for %s: %v", userID, err)
		return err
	}

	logger.Info("AfterAuthenticateDevice: Seeded display name %q for new user %s", displayName, userID)
	return nil
}
