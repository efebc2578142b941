package telegram

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// #region user-limiter
// userLimiter applies a per-user token bucket to command traffic so one
// user cannot flood the bot with replies.
type userLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	burst    int
	users    map[int64]*rate.Limiter
}

func newUserLimiter(perMinute, burst int) *userLimiter {
	if perMinute <= 0 {
		perMinute = 20
	}
	if burst <= 0 {
		burst = perMinute
	}
	return &userLimiter{
		interval: time.Minute / time.Duration(perMinute),
		burst:    burst,
		users:    make(map[int64]*rate.Limiter),
	}
}

// Allow reports whether the user may act now, consuming one token if so.
func (l *userLimiter) Allow(userID int64) bool {
	l.mu.Lock()
	lim, ok := l.users[userID]
	if !ok {
		lim = rate.NewLimiter(rate.Every(l.interval), l.burst)
		l.users[userID] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

// #endregion user-limiter
