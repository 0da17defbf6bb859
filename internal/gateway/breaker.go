package gateway

import (
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"
)

// newBreaker builds the circuit breaker guarding the hub's read paths.
// It trips after 5 consecutive failures and resets on an exponential
// schedule. An open breaker fails calls fast; it never retries them, so
// the single-attempt-per-call contract is unaffected.
func newBreaker() *circuit.Breaker {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 30 * time.Second
	expBackoff.MaxInterval = 5 * time.Minute
	expBackoff.Multiplier = 2.0
	expBackoff.Reset()

	return circuit.NewBreakerWithOptions(&circuit.Options{
		BackOff:    expBackoff,
		ShouldTrip: circuit.ThresholdTripFunc(5),
	})
}
