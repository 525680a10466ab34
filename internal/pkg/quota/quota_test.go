package quota

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeCounter is an in-memory CounterClient. Keys carry the window date,
// so advancing the tracker's clock lands on fresh counters without any
// expiry simulation.
type fakeCounter struct {
	counts map[string]int64
	ttls   map[string]time.Duration
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCounter) Incr(ctx context.Context, key string) *redis.IntCmd {
	f.counts[key]++
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(f.counts[key])
	return cmd
}

func (f *fakeCounter) Decr(ctx context.Context, key string) *redis.IntCmd {
	f.counts[key]--
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(f.counts[key])
	return cmd
}

func (f *fakeCounter) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.ttls[key] = expiration
	cmd := redis.NewBoolCmd(ctx)
	cmd.SetVal(true)
	return cmd
}

func (f *fakeCounter) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	count, ok := f.counts[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(strconv.FormatInt(count, 10))
	return cmd
}

func TestWindowKey(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 20:00 UTC on Jan 1 is already Jan 2 in IST (+05:30).
	moment := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)

	got := WindowKey("user-1", FeatureInterviewGeneration, moment, ist)
	want := "quota:project_interview_generate:user-1:2025-01-02"
	if got != want {
		t.Fatalf("WindowKey = %q, want %q", got, want)
	}

	gotUTC := WindowKey("user-1", FeatureInterviewGeneration, moment, time.UTC)
	wantUTC := "quota:project_interview_generate:user-1:2025-01-01"
	if gotUTC != wantUTC {
		t.Fatalf("WindowKey (UTC) = %q, want %q", gotUTC, wantUTC)
	}
}

// All users share one reset boundary: the key is a pure function of the
// reference timezone, never of a per-request locale.
func TestWindowKey_SameInstantSameKey(t *testing.T) {
	ist, _ := time.LoadLocation("Asia/Kolkata")
	instant := time.Date(2025, 6, 15, 3, 30, 0, 0, time.UTC)

	inIST := WindowKey("u", "f", instant.In(ist), ist)
	inUTC := WindowKey("u", "f", instant, ist)
	if inIST != inUTC {
		t.Fatalf("same instant produced different keys: %q vs %q", inIST, inUTC)
	}
}

func TestWindowKey_AdvancesAtMidnight(t *testing.T) {
	ist, _ := time.LoadLocation("Asia/Kolkata")

	before := time.Date(2025, 3, 9, 23, 59, 59, 0, ist)
	after := time.Date(2025, 3, 10, 0, 0, 1, 0, ist)

	if WindowKey("u", "f", before, ist) == WindowKey("u", "f", after, ist) {
		t.Fatalf("expected a new window after midnight")
	}
}

func testTracker(counter *fakeCounter) (*Tracker, *time.Time) {
	ist, _ := time.LoadLocation("Asia/Kolkata")
	clock := time.Date(2025, 3, 9, 18, 0, 0, 0, ist)
	tracker := NewTrackerWithClient(counter, ist, func() time.Time { return clock })
	return tracker, &clock
}

func TestConsume_WindowLifecycle(t *testing.T) {
	ctx := context.Background()
	counter := newFakeCounter()
	tracker, clock := testTracker(counter)

	// The allowance counts down one per call.
	for i, want := range []int{2, 1, 0} {
		remaining, err := tracker.Consume(ctx, "user-1", FeatureInterviewGeneration, DefaultDailyLimit)
		if err != nil {
			t.Fatalf("Consume %d: %v", i+1, err)
		}
		if remaining != want {
			t.Fatalf("Consume %d: remaining = %d, want %d", i+1, remaining, want)
		}
	}

	// The fourth call within the same day is refused.
	if _, err := tracker.Consume(ctx, "user-1", FeatureInterviewGeneration, DefaultDailyLimit); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}

	// The refused call must not eat into the counter.
	remaining, err := tracker.Peek(ctx, "user-1", FeatureInterviewGeneration, DefaultDailyLimit)
	if err != nil || remaining != 0 {
		t.Fatalf("Peek after refusal = (%d, %v), want (0, nil)", remaining, err)
	}

	// Past midnight the allowance is fresh.
	*clock = clock.Add(12 * time.Hour)
	remaining, err = tracker.Consume(ctx, "user-1", FeatureInterviewGeneration, DefaultDailyLimit)
	if err != nil {
		t.Fatalf("Consume after reset: %v", err)
	}
	if remaining != DefaultDailyLimit-1 {
		t.Fatalf("Consume after reset: remaining = %d, want %d", remaining, DefaultDailyLimit-1)
	}
}

func TestConsume_SetsExpiryOnFirstUse(t *testing.T) {
	counter := newFakeCounter()
	tracker, clock := testTracker(counter)

	if _, err := tracker.Consume(context.Background(), "user-1", FeatureInterviewGeneration, DefaultDailyLimit); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	key := WindowKey("user-1", FeatureInterviewGeneration, *clock, clock.Location())
	if counter.ttls[key] != keyTTL {
		t.Fatalf("ttl = %v, want %v", counter.ttls[key], keyTTL)
	}
}

func TestConsume_IsolatesUsers(t *testing.T) {
	ctx := context.Background()
	tracker, _ := testTracker(newFakeCounter())

	for i := 0; i < DefaultDailyLimit; i++ {
		if _, err := tracker.Consume(ctx, "user-1", FeatureInterviewGeneration, DefaultDailyLimit); err != nil {
			t.Fatalf("Consume %d: %v", i+1, err)
		}
	}

	remaining, err := tracker.Consume(ctx, "user-2", FeatureInterviewGeneration, DefaultDailyLimit)
	if err != nil {
		t.Fatalf("Consume for user-2: %v", err)
	}
	if remaining != DefaultDailyLimit-1 {
		t.Fatalf("user-2 remaining = %d, want %d", remaining, DefaultDailyLimit-1)
	}
}

func TestPeek_UnusedWindow(t *testing.T) {
	tracker, _ := testTracker(newFakeCounter())

	remaining, err := tracker.Peek(context.Background(), "user-1", FeatureInterviewGeneration, DefaultDailyLimit)
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if remaining != DefaultDailyLimit {
		t.Fatalf("Peek on unused window = %d, want %d", remaining, DefaultDailyLimit)
	}
}
