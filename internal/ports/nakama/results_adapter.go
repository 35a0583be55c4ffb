package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"

	"clashofcards/internal/ports"
)

// resultsCollection is the storage collection holding finished game records.
const resultsCollection = "game_results"

// StorageResultsAdapter implements ports.ResultsPort on Nakama's storage
// engine. Records are system-owned and publicly readable.
type StorageResultsAdapter struct {
	nk runtime.NakamaModule
}

// NewStorageResultsAdapter creates a results adapter.
func NewStorageResultsAdapter(nk runtime.NakamaModule) *StorageResultsAdapter {
	return &StorageResultsAdapter{nk: nk}
}

// RecordResult persists one finished game keyed by its room id.
func (a *StorageResultsAdapter) RecordResult(ctx context.Context, result ports.GameResult) error {
	value, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal game result: %w", err)
	}

	writes := []*runtime.StorageWrite{{
		Collection:      resultsCollection,
		Key:             result.RoomID,
		Value:           string(value),
		PermissionRead:  2,
		PermissionWrite: 0,
	}}
	if _, err := a.nk.StorageWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to store game result: %w", err)
	}
	return nil
}
