package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/form3tech-oss/jwt-go"

	"clashofcards/internal/domain"
)

// ErrAdvisoryUnavailable marks a failed or disabled advisory call. It is
// soft: callers log it and proceed with the deterministic heuristic, and it
// is never surfaced to players.
var ErrAdvisoryUnavailable = errors.New("advisory service unavailable")

// Suggestion is the advisory service's non-authoritative opinion: a suit to
// discard from and an optional table-talk line relayed as chat.
type Suggestion struct {
	Suit    domain.Suit `json:"suit"`
	Comment string      `json:"comment"`
}

// Advisor calls an external strategy/dialogue service. Every call carries a
// hard deadline; the authoritative game flow never waits on it.
type Advisor struct {
	endpoint string
	issuer   string
	secret   string
	client   *http.Client
}

// NewAdvisor constructs an advisor. An empty endpoint yields a disabled
// advisor whose calls all report ErrAdvisoryUnavailable.
func NewAdvisor(endpoint, issuer, secret string, timeout time.Duration) *Advisor {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Advisor{
		endpoint: endpoint,
		issuer:   issuer,
		secret:   secret,
		client:   &http.Client{Timeout: timeout},
	}
}

// SuggestDiscard asks the service which suit the given hand should shed.
func (a *Advisor) SuggestDiscard(ctx context.Context, hand []domain.Card) (Suggestion, error) {
	if a == nil || a.endpoint == "" {
		return Suggestion{}, ErrAdvisoryUnavailable
	}

	body, err := json.Marshal(map[string]any{"cards": hand})
	if err != nil {
		return Suggestion{}, fmt.Errorf("%w: %v", ErrAdvisoryUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return Suggestion{}, fmt.Errorf("%w: %v", ErrAdvisoryUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	token, err := a.bearerToken()
	if err != nil {
		return Suggestion{}, fmt.Errorf("%w: %v", ErrAdvisoryUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.Do(req)
	if err != nil {
		return Suggestion{}, fmt.Errorf("%w: %v", ErrAdvisoryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Suggestion{}, fmt.Errorf("%w: status %d", ErrAdvisoryUnavailable, resp.StatusCode)
	}

	var suggestion Suggestion
	if err := json.NewDecoder(resp.Body).Decode(&suggestion); err != nil {
		return Suggestion{}, fmt.Errorf("%w: %v", ErrAdvisoryUnavailable, err)
	}
	if !validSuit(suggestion.Suit) {
		return Suggestion{}, fmt.Errorf("%w: unknown suit %q", ErrAdvisoryUnavailable, suggestion.Suit)
	}
	return suggestion, nil
}

func (a *Advisor) bearerToken() (string, error) {
	claims := jwt.MapClaims{
		"iss": a.issuer,
		"sub": "discard-advice",
		"exp": time.Now().Add(time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.secret))
}

func validSuit(s domain.Suit) bool {
	for _, known := range domain.Suits {
		if s == known {
			return true
		}
	}
	return false
}
