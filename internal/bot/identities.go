package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// BotIdentity is one profile from the bot pool.
type BotIdentity struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarIndex int    `json:"avatar_index"`
}

// botIDPrefix marks generated bot ids so substituted seats are recognized
// even when no identity pool was loaded.
const botIDPrefix = "bot-"

var (
	botIdentities     []BotIdentity
	botIDMap          map[string]bool
	botDisplayNameMap map[string]string
	loadOnce          sync.Once
	loadErr           error
)

// LoadIdentities loads the bot profiles from the given path.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}

		if err := json.Unmarshal(data, &botIdentities); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}

		botIDMap = make(map[string]bool)
		botDisplayNameMap = make(map[string]string)
		for _, identity := range botIdentities {
			if identity.UserID != "" {
				botIDMap[identity.UserID] = true
				botDisplayNameMap[identity.UserID] = identity.DisplayName
			}
		}
	})
	return loadErr
}

// GetBotIdentity returns an identity for a bot by index (mod pool size),
// falling back to a generated profile when no pool is loaded.
func GetBotIdentity(index int) BotIdentity {
	if len(botIdentities) == 0 {
		return BotIdentity{
			UserID:      fmt.Sprintf("%s%d", botIDPrefix, index),
			DisplayName: fmt.Sprintf("AI Player %d", index+1),
		}
	}
	return botIdentities[index%len(botIdentities)]
}

// GetBotDisplayName returns the display name for a bot id, or "" for
// unknown ids.
func GetBotDisplayName(userID string) string {
	if name := botDisplayNameMap[userID]; name != "" {
		return name
	}
	if strings.HasPrefix(userID, botIDPrefix) {
		return "AI Player"
	}
	return ""
}

// IsBot reports whether the given user id belongs to a bot seat.
func IsBot(userID string) bool {
	if botIDMap[userID] {
		return true
	}
	return strings.HasPrefix(userID, botIDPrefix)
}
