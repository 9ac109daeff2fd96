package httpclient

import (
	"time"

	"wedding-marketplace/config"

	circuit "github.com/rubyist/circuitbreaker"
)

func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case "consecutive":
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveFailures)
	case "rate":
		return circuit.NewRateBreaker(cfg.ErrorRate, cfg.MinSamples)
	default:
		return circuit.NewThresholdBreaker(cfg.Threshold)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return circuit.NewHTTPClientWithBreaker(cb, timeout, nil)
}
