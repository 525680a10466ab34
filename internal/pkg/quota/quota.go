// Package quota enforces rolling daily limits on premium-only features.
// Counters live in Redis keyed by user, feature and calendar day; the
// day boundary uses one fixed timezone so all users reset together.
package quota

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/cache"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/env"
)

// ErrQuotaExceeded means the user spent today's allowance for the feature.
var ErrQuotaExceeded = errors.New("daily quota exceeded")

// FeatureInterviewGeneration is the AI question-generation feature key.
const FeatureInterviewGeneration = "project_interview_generate"

// DefaultDailyLimit is the generation allowance per calendar day.
const DefaultDailyLimit = 3

// Counter keys outlive the window by a day so a clock-skewed reader
// never sees a premature reset, then expire on their own.
const keyTTL = 48 * time.Hour

// CounterClient is the subset of redis commands the tracker needs.
// *redis.Client satisfies it directly.
type CounterClient interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Decr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Tracker counts feature usage per user and day.
type Tracker struct {
	rdb      CounterClient
	location *time.Location
	now      func() time.Time
}

// NewTracker creates a tracker on the shared cache client, using the
// QUOTA_TIMEZONE location (default Asia/Kolkata) for day boundaries.
func NewTracker() *Tracker {
	name := env.GetEnv("QUOTA_TIMEZONE", "Asia/Kolkata")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("quota: unknown timezone %q, falling back to UTC", name)
		loc = time.UTC
	}
	return &Tracker{rdb: cache.GetClient(), location: loc, now: time.Now}
}

// NewTrackerWithClient creates a tracker with explicit collaborators (tests).
func NewTrackerWithClient(rdb CounterClient, loc *time.Location, now func() time.Time) *Tracker {
	return &Tracker{rdb: rdb, location: loc, now: now}
}

// WindowKey builds the counter key for a user/feature pair on the given day.
func WindowKey(userID, feature string, day time.Time, loc *time.Location) string {
	return fmt.Sprintf("quota:%s:%s:%s", feature, userID, day.In(loc).Format("2006-01-02"))
}

func (t *Tracker) key(userID, feature string) string {
	return WindowKey(userID, feature, t.now(), t.location)
}

// Consume spends one unit of today's allowance and returns how many are
// left. When the window is exhausted it returns ErrQuotaExceeded without
// incrementing. The INCR/DECR pair is best-effort under extreme
// concurrency, which is acceptable for a low non-financial limit.
func (t *Tracker) Consume(ctx context.Context, userID, feature string, dailyLimit int) (int, error) {
	key := t.key(userID, feature)
	count, err := t.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		t.rdb.Expire(ctx, key, keyTTL)
	}
	if count > int64(dailyLimit) {
		// Undo the overshoot so Peek stays accurate.
		t.rdb.Decr(ctx, key)
		return 0, ErrQuotaExceeded
	}
	return dailyLimit - int(count), nil
}

// Peek returns the remaining allowance without consuming any.
func (t *Tracker) Peek(ctx context.Context, userID, feature string, dailyLimit int) (int, error) {
	count, err := t.rdb.Get(ctx, t.key(userID, feature)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return dailyLimit, nil
		}
		return 0, err
	}
	remaining := dailyLimit - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
