package infra

import (
	"errors"
	"sync"
	"time"
)

// CircuitBreaker guards calls to an unreliable dependency (SMTP).
// After FailureThreshold consecutive failures it opens and fails fast for
// OpenTimeout; the first call after that is a probe that either closes it
// again or re-opens it.
type CircuitBreaker struct {
	mu               sync.Mutex
	state            CBState
	failures         int
	openedAt         time.Time
	failureThreshold int
	openTimeout      time.Duration
	now              func() time.Time
}

// CBState is the breaker position.
type CBState int

const (
	CBClosed CBState = iota
	CBOpen
	CBHalfOpen
)

func (s CBState) String() string {
	switch s {
	case CBClosed:
		return "closed"
	case CBOpen:
		return "open"
	case CBHalfOpen:
		return "half-open"
	}
	return "unknown"
}

// ErrCircuitOpen is returned by Execute without calling fn while open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// NewCircuitBreaker returns a closed breaker. Non-positive arguments fall back
// to 5 failures / 60s.
func NewCircuitBreaker(failureThreshold int, openTimeout time.Duration) *CircuitBreaker {
	if failureThreshold <= 0 {
		failureThreshold = 5
	}
	if openTimeout <= 0 {
		openTimeout = 60 * time.Second
	}
	return &CircuitBreaker{
		failureThreshold: failureThreshold,
		openTimeout:      openTimeout,
		now:              time.Now,
	}
}

// State reports the current position, moving open → half-open once the
// timeout has elapsed.
func (cb *CircuitBreaker) State() CBState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.stateLocked()
}

func (cb *CircuitBreaker) stateLocked() CBState {
	if cb.state == CBOpen && cb.now().Sub(cb.openedAt) >= cb.openTimeout {
		cb.state = CBHalfOpen
	}
	return cb.state
}

// Execute runs fn unless the breaker is open.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	cb.mu.Lock()
	if cb.stateLocked() == CBOpen {
		cb.mu.Unlock()
		return ErrCircuitOpen
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err == nil {
		cb.state = CBClosed
		cb.failures = 0
		return nil
	}
	cb.failures++
	if cb.state == CBHalfOpen || cb.failures >= cb.failureThreshold {
		cb.state = CBOpen
		cb.openedAt = cb.now()
	}
	return err
}
