package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig holds the tunables for room timing, bots, matchmaking and the
// advisory sidecar. All durations are in seconds, which at the match tick
// rate of 1/s double as tick counts.
type GameConfig struct {
	// ReconnectGraceSeconds is how long a disconnected seat is held before
	// it is handed to a bot (active room) or removed (waiting room).
	ReconnectGraceSeconds int `json:"reconnect_grace_seconds"`

	// BotMinDelaySeconds / BotMaxDelaySeconds bound the human-perceptible
	// pause before a bot takes its turn.
	BotMinDelaySeconds int `json:"bot_min_delay_seconds"`
	BotMaxDelaySeconds int `json:"bot_max_delay_seconds"`

	// BotAutoFillDelaySeconds configures how long a bots-enabled lobby
	// waits before topping up empty seats with bots.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`

	// QueueTimeoutSeconds is how long a short quick-match queue waits
	// before being flushed into a bots-enabled room.
	QueueTimeoutSeconds int `json:"queue_timeout_seconds"`

	// Advisory sidecar. An empty endpoint disables the integration; the
	// deterministic bot heuristic is always the fallback.
	AdvisoryEndpoint       string `json:"advisory_endpoint"`
	AdvisoryIssuer         string `json:"advisory_issuer"`
	AdvisorySecret         string `json:"advisory_secret"`
	AdvisoryTimeoutSeconds int    `json:"advisory_timeout_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path. Only the
// first call reads the file; later calls return the first result.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or nil before a
// successful load. Callers should prefer the typed getters below.
func GetGameConfig() *GameConfig {
	return cfg
}

// ReconnectGraceSeconds returns the grace window with a safe default.
func ReconnectGraceSeconds() int {
	if cfg == nil || cfg.ReconnectGraceSeconds <= 0 {
		return 60
	}
	return cfg.ReconnectGraceSeconds
}

// BotDelayBounds returns the min and max bot turn delay, defaulting to 1..3.
func BotDelayBounds() (int, int) {
	minDelay, maxDelay := 1, 3
	if cfg != nil && cfg.BotMinDelaySeconds > 0 {
		minDelay = cfg.BotMinDelaySeconds
	}
	if cfg != nil && cfg.BotMaxDelaySeconds > 0 {
		maxDelay = cfg.BotMaxDelaySeconds
	}
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return minDelay, maxDelay
}

// BotAutoFillDelaySeconds returns the lobby auto-fill delay, defaulting to 5.
func BotAutoFillDelaySeconds() int {
	if cfg == nil || cfg.BotAutoFillDelaySeconds <= 0 {
		return 5
	}
	return cfg.BotAutoFillDelaySeconds
}

// QueueTimeoutSeconds returns the quick-match queue timeout, defaulting to 30.
func QueueTimeoutSeconds() int {
	if cfg == nil || cfg.QueueTimeoutSeconds <= 0 {
		return 30
	}
	return cfg.QueueTimeoutSeconds
}

// AdvisoryEndpoint returns the advisory service URL; empty means disabled.
func AdvisoryEndpoint() string {
	if cfg == nil {
		return ""
	}
	return cfg.AdvisoryEndpoint
}

// AdvisoryIssuer returns the iss claim for advisory bearer tokens.
func AdvisoryIssuer() string {
	if cfg == nil || cfg.AdvisoryIssuer == "" {
		return "clashofcards"
	}
	return cfg.AdvisoryIssuer
}

// AdvisorySecret returns the signing secret for advisory bearer tokens.
func AdvisorySecret() string {
	if cfg == nil {
		return ""
	}
	return cfg.AdvisorySecret
}

// AdvisoryTimeoutSeconds returns the advisory call deadline, defaulting to 2.
func AdvisoryTimeoutSeconds() int {
	if cfg == nil || cfg.AdvisoryTimeoutSeconds <= 0 {
		return 2
	}
	return cfg.AdvisoryTimeoutSeconds
}
