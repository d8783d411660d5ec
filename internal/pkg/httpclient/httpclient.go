package httpclient

import (
	"reservation-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

const (
	BreakerThreshold   = "threshold"
	BreakerConsecutive = "consecutive"
	BreakerRate        = "rate"
)

// InitCircuitBreaker builds the breaker guarding outbound gateway calls.
func InitCircuitBreaker(cfg *config.HttpClientConfig, cbType string) *circuit.Breaker {
	switch cbType {
	case BreakerConsecutive:
		return circuit.NewConsecutiveBreaker(cfg.Threshold)
	case BreakerRate:
		return circuit.NewRateBreaker(cfg.Rate, cfg.MinSamples)
	default:
		return circuit.NewThresholdBreaker(cfg.Threshold)
	}
}
