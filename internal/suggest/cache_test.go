package suggest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type stubProvider struct {
	calls int
	out   []string
	err   error
}

func (s *stubProvider) Suggest(ctx context.Context, query string, max int) ([]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.out, nil
}

func (s *stubProvider) Name() string { return "stub" }

// Points at a closed port so every cache operation fails fast.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestCachedProviderFallsThroughWhenRedisDown(t *testing.T) {
	inner := &stubProvider{out: []string{"a", "b"}}
	p := NewCachedProvider(inner, unreachableRedis(), time.Minute)

	for i := 1; i <= 2; i++ {
		suggestions, err := p.Suggest(context.Background(), "q", 10)
		if err != nil {
			t.Fatalf("call %d: expected cache failure to fall through, got %v", i, err)
		}
		if len(suggestions) != 2 {
			t.Fatalf("call %d: unexpected suggestions %v", i, suggestions)
		}
	}
	if inner.calls != 2 {
		t.Errorf("expected inner provider hit on every call without cache, got %d", inner.calls)
	}
}

func TestCachedProviderPropagatesProviderError(t *testing.T) {
	inner := &stubProvider{err: errors.New("upstream down")}
	p := NewCachedProvider(inner, unreachableRedis(), time.Minute)

	if _, err := p.Suggest(context.Background(), "q", 10); err == nil {
		t.Error("expected provider error to propagate")
	}
}

func TestCachedProviderName(t *testing.T) {
	p := NewCachedProvider(&stubProvider{}, unreachableRedis(), time.Minute)
	if p.Name() != "stub" {
		t.Errorf("expected inner provider name, got %q", p.Name())
	}
}
