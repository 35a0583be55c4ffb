package ports

import "context"

// GameResult is the final placement record for one finished room.
type GameResult struct {
	RoomID      string
	WinnerID    string
	FinishOrder []string // user IDs, first place first
	Rounds      int
}

// ResultsPort records finished games for out-of-band consumers such as
// leaderboards and player stats.
type ResultsPort interface {
	// RecordResult persists one finished game. Failures are logged and never
	// block the match loop.
	RecordResult(ctx context.Context, result GameResult) error
}
