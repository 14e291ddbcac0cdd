package ratelimit

import (
	"testing"
	"time"
)

func TestLimiterBurstThenRefill(t *testing.T) {
	now := time.Unix(0, 0)
	l := New(2, 1)
	l.now = func() time.Time { return now }

	if !l.Allow("s1") || !l.Allow("s1") {
		t.Fatalf("expected burst of 2 to pass")
	}
	if l.Allow("s1") {
		t.Fatalf("expected third call to be throttled")
	}
	if !l.Allow("s2") {
		t.Fatalf("keys must not share buckets")
	}

	now = now.Add(1500 * time.Millisecond)
	if !l.Allow("s1") {
		t.Fatalf("expected refill after 1.5s")
	}
	if l.Allow("s1") {
		t.Fatalf("only one token should have refilled")
	}
}

func TestLimiterForget(t *testing.T) {
	l := New(1, 0)
	l.Allow("s1")
	if l.Len() != 1 {
		t.Fatalf("expected one tracked key")
	}
	l.Forget("s1")
	if l.Len() != 0 || !l.Allow("s1") {
		t.Fatalf("forgotten key should start with a full bucket")
	}
}
