package nakama

import (
	"sync"
	"time"

	"clashofcards/internal/domain"
)

// matchLauncher creates a match for the given players and notifies them.
// botsEnabled is true for matches launched from a short queue, where bots
// top up the missing seats.
type matchLauncher func(userIDs []string, botsEnabled bool)

// QuickMatchQueue is a FIFO of players waiting for a full table. It launches
// a match as soon as four players are queued, or flushes a shorter queue
// into a bots-enabled match when the timeout expires.
type QuickMatchQueue struct {
	mu      sync.Mutex
	waiting []string
	timeout time.Duration
	timer   *time.Timer
	launch  matchLauncher
}

// NewQuickMatchQueue constructs a queue with the given flush timeout.
func NewQuickMatchQueue(timeout time.Duration, launch matchLauncher) *QuickMatchQueue {
	return &QuickMatchQueue{timeout: timeout, launch: launch}
}

// Add queues a player. Adding an already-queued player is a no-op. When the
// queue reaches a full table the launcher runs with bots disabled.
func (q *QuickMatchQueue) Add(userID string) {
	q.mu.Lock()

	for _, id := range q.waiting {
		if id == userID {
			q.mu.Unlock()
			return
		}
	}
	q.waiting = append(q.waiting, userID)

	if len(q.waiting) == 1 && q.timeout > 0 {
		q.timer = time.AfterFunc(q.timeout, q.flush)
	}

	if len(q.waiting) < domain.NumSeats {
		q.mu.Unlock()
		return
	}

	batch := q.pop()
	q.mu.Unlock()
	q.launch(batch, false)
}

// Remove takes a player out of the queue, reporting whether they were in it.
func (q *QuickMatchQueue) Remove(userID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, id := range q.waiting {
		if id != userID {
			continue
		}
		q.waiting = append(q.waiting[:i], q.waiting[i+1:]...)
		if len(q.waiting) == 0 {
			q.stopTimer()
		}
		return true
	}
	return false
}

// Len reports the number of queued players.
func (q *QuickMatchQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.waiting)
}

// flush launches whatever is queued into a bots-enabled match.
func (q *QuickMatchQueue) flush() {
	q.mu.Lock()
	if len(q.waiting) == 0 {
		q.mu.Unlock()
		return
	}
	batch := q.pop()
	q.mu.Unlock()
	q.launch(batch, true)
}

// pop drains the queue and clears the timer. Caller holds the lock.
func (q *QuickMatchQueue) pop() []string {
	batch := q.waiting
	q.waiting = nil
	q.stopTimer()
	return batch
}

func (q *QuickMatchQueue) stopTimer() {
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}
