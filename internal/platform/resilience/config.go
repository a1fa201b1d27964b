package resilience

import (
	"errors"
	"time"
)

// CircuitBreakerConfig describes the breaker guarding one outbound dependency.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// Validate rejects values the env loader must not silently replace.
func (c CircuitBreakerConfig) Validate() error {
	var errs []error
	if c.FailureThreshold < 1 {
		errs = append(errs, errors.New("failure threshold must be >= 1"))
	}
	if c.OpenTimeout <= 0 {
		errs = append(errs, errors.New("open timeout must be > 0"))
	}
	if c.HalfOpenMaxReq < 1 {
		errs = append(errs, errors.New("half-open max requests must be >= 1"))
	}
	return errors.Join(errs...)
}

// Normalized fills unset limits from the defaults. Enabled is kept as given.
func (c CircuitBreakerConfig) Normalized() CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaults.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaults.OpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return c
}

// NewBreaker builds a breaker from the normalized config.
func (c CircuitBreakerConfig) NewBreaker() *CircuitBreaker {
	n := c.Normalized()
	return NewCircuitBreaker(n.FailureThreshold, n.OpenTimeout, n.HalfOpenMaxReq)
}
