package resilience

import (
	"testing"
	"time"
)

func TestCircuitBreakerConfig_NormalizedKeepsEnabled(t *testing.T) {
	got := CircuitBreakerConfig{HalfOpenMaxReq: 4}.Normalized()
	if got.Enabled {
		t.Fatalf("expected Enabled to stay false")
	}
	if got.FailureThreshold != 5 || got.OpenTimeout != 15*time.Second || got.HalfOpenMaxReq != 4 {
		t.Fatalf("unexpected normalized config: %+v", got)
	}
}

func TestCircuitBreakerConfig_Validate(t *testing.T) {
	if err := DefaultCircuitBreakerConfig().Validate(); err != nil {
		t.Fatalf("expected defaults to be valid: %v", err)
	}
	if err := (CircuitBreakerConfig{FailureThreshold: 0, OpenTimeout: time.Second, HalfOpenMaxReq: 1}).Validate(); err == nil {
		t.Fatalf("expected error for zero failure threshold")
	}
	if err := (CircuitBreakerConfig{FailureThreshold: 1, OpenTimeout: 0, HalfOpenMaxReq: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero timeout and half-open limit")
	}
}

func TestCircuitBreakerConfig_NewBreakerStartsClosed(t *testing.T) {
	b := CircuitBreakerConfig{FailureThreshold: 1, OpenTimeout: time.Minute, HalfOpenMaxReq: 1}.NewBreaker()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed breaker, got %s", state)
	}
	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected breaker to open after one failure, got %s", state)
	}
}
